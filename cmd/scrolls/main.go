// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command scrolls imports manuscript-fragment CSV exports into the content
// database.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from the environment and the .env file.
//  3. Apply command-line overrides and resolve the schema variant.
//  4. Connect to PostgreSQL (pgxpool).
//  5. Run database migrations when asked (idempotent).
//  6. Connect to Redis and take the run lock when configured.
//  7. Start the status server when configured.
//  8. Run the import phases and print the report as one JSON line.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

func main() {
	Execute()
}
