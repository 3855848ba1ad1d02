// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import "context"

// Repository reads terms from the content store.
type Repository interface {
	// FindTerms returns the terms of namespace whose name is one of names,
	// ordered by id.
	FindTerms(context context.Context, namespace string, names []string) ([]Term, error)
	// ListTermNames returns every term name of namespace.
	ListTermNames(context context.Context, namespace string) ([]string, error)
}
