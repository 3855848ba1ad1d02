// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer_test

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/taibuivan/scrolls/internal/core/content"
	"github.com/taibuivan/scrolls/internal/core/taxonomy"
	"github.com/taibuivan/scrolls/internal/importer"
	"github.com/taibuivan/scrolls/internal/platform/constants"
)

// memoryBackend is an in-memory importer.Backend. A failed phase or
// savepoint restores the store to its state before it started.
type memoryBackend struct {
	terms  *memoryTerms
	store  *memoryStore
	phases []string
}

func newBackend() *memoryBackend {
	return &memoryBackend{terms: newTerms(), store: newStore()}
}

func (backend *memoryBackend) Terms() taxonomy.Repository { return backend.terms }

func (backend *memoryBackend) Phase(ctx context.Context, name string, fn func(ctx context.Context, scope importer.Scope) error) error {
	backend.phases = append(backend.phases, name)
	snapshot := backend.store.snapshot()
	if err := fn(ctx, &memoryScope{store: backend.store}); err != nil {
		backend.store.restore(snapshot)
		return err
	}
	return nil
}

type memoryScope struct {
	store *memoryStore
}

func (scope *memoryScope) Content() content.Repository { return scope.store }

func (scope *memoryScope) Savepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := scope.store.snapshot()
	if err := fn(ctx); err != nil {
		scope.store.restore(snapshot)
		return err
	}
	return nil
}

type storedEntry struct {
	ID int64
	content.Entry
}

type storedMeta struct {
	EntryID int64
	Key     string
	Value   string
}

type storedLink struct {
	EntryID   int64
	TermID    int64
	Namespace string
}

// memoryStore is an in-memory content.Repository.
type memoryStore struct {
	nextID  int64
	entries []storedEntry
	meta    []storedMeta
	links   []storedLink

	failMeta    map[string]error
	sequenceErr error
}

func newStore() *memoryStore {
	return &memoryStore{nextID: constants.SequenceBaseline, failMeta: map[string]error{}}
}

// storeSnapshot leaves nextID out: ids are not reused after a rollback.
type storeSnapshot struct {
	entries []storedEntry
	meta    []storedMeta
	links   []storedLink
}

func (store *memoryStore) snapshot() storeSnapshot {
	return storeSnapshot{
		entries: slices.Clone(store.entries),
		meta:    slices.Clone(store.meta),
		links:   slices.Clone(store.links),
	}
}

func (store *memoryStore) restore(snapshot storeSnapshot) {
	store.entries = snapshot.entries
	store.meta = snapshot.meta
	store.links = snapshot.links
}

func (store *memoryStore) InsertEntry(_ context.Context, entry content.Entry) (int64, error) {
	id := store.nextID
	store.nextID++
	store.entries = append(store.entries, storedEntry{ID: id, Entry: entry})
	return id, nil
}

func (store *memoryStore) FindIDsByTitle(_ context.Context, title, entryType string) ([]int64, error) {
	var ids []int64
	for _, entry := range store.entries {
		if entry.Title == title && (entryType == "" || entry.Type == entryType) {
			ids = append(ids, entry.ID)
		}
	}
	return ids, nil
}

func (store *memoryStore) AddMeta(_ context.Context, entryID int64, key, value string) error {
	if err := store.failMeta[key]; err != nil {
		return err
	}
	store.meta = append(store.meta, storedMeta{EntryID: entryID, Key: key, Value: value})
	return nil
}

func (store *memoryStore) AddTermRelationship(_ context.Context, entryID, termID int64, namespace string) error {
	link := storedLink{EntryID: entryID, TermID: termID, Namespace: namespace}
	if !slices.Contains(store.links, link) {
		store.links = append(store.links, link)
	}
	return nil
}

func (store *memoryStore) DeleteManaged(_ context.Context, types []string) (content.DeleteResult, error) {
	var result content.DeleteResult
	removed := make(map[int64]bool)

	kept := store.entries[:0:0]
	for _, entry := range store.entries {
		if slices.Contains(types, entry.Type) || entry.Status == constants.StatusAutoDraft {
			removed[entry.ID] = true
			result.Entries++
			continue
		}
		kept = append(kept, entry)
	}
	store.entries = kept

	store.meta = slices.DeleteFunc(store.meta, func(m storedMeta) bool {
		if removed[m.EntryID] {
			result.Meta++
			return true
		}
		return false
	})
	store.links = slices.DeleteFunc(store.links, func(l storedLink) bool {
		if removed[l.EntryID] {
			result.Relationships++
			return true
		}
		return false
	})
	return result, nil
}

func (store *memoryStore) ResetSequence(_ context.Context, baseline int64) error {
	if store.sequenceErr != nil {
		return store.sequenceErr
	}
	store.nextID = baseline
	return nil
}

// byType returns the stored entries of entryType in insertion order.
func (store *memoryStore) byType(entryType string) []storedEntry {
	var out []storedEntry
	for _, entry := range store.entries {
		if entry.Type == entryType {
			out = append(out, entry)
		}
	}
	return out
}

func (store *memoryStore) metaOf(entryID int64) map[string]string {
	out := make(map[string]string)
	for _, m := range store.meta {
		if m.EntryID == entryID {
			out[m.Key] = m.Value
		}
	}
	return out
}

func (store *memoryStore) metaCount(entryID int64) int {
	n := 0
	for _, m := range store.meta {
		if m.EntryID == entryID {
			n++
		}
	}
	return n
}

func (store *memoryStore) linksOf(entryID int64) []storedLink {
	var out []storedLink
	for _, l := range store.links {
		if l.EntryID == entryID {
			out = append(out, l)
		}
	}
	return out
}

// memoryTerms holds a small vocabulary per namespace.
type memoryTerms struct {
	terms map[string][]taxonomy.Term
}

func newTerms() *memoryTerms {
	return &memoryTerms{terms: map[string][]taxonomy.Term{
		constants.TaxonomyQuality:     {{ID: 11, Name: "Exact"}, {ID: 12, Name: "Circa"}},
		constants.TaxonomyOrientation: {{ID: 21, Name: "Horizontal"}, {ID: 22, Name: "Vertical"}},
		constants.TaxonomyLanguage:    {{ID: 31, Name: "la"}, {ID: 32, Name: "de"}},
		constants.TaxonomyType:        {{ID: 41, Name: "Roll"}},
		constants.TaxonomyCountry:     {{ID: 51, Name: "France"}, {ID: 52, Name: "Great Britain"}},
	}}
}

func (terms *memoryTerms) FindTerms(_ context.Context, namespace string, names []string) ([]taxonomy.Term, error) {
	var found []taxonomy.Term
	for _, term := range terms.terms[namespace] {
		if slices.Contains(names, term.Name) {
			found = append(found, term)
		}
	}
	return found, nil
}

func (terms *memoryTerms) ListTermNames(_ context.Context, namespace string) ([]string, error) {
	var names []string
	for _, term := range terms.terms[namespace] {
		names = append(names, term.Name)
	}
	return names, nil
}

func storedEntryOf(entryType, status string) content.Entry {
	entry := content.NewEntry("Seed "+entryType, "seed-"+entryType, entryType, time.Time{})
	entry.Status = status
	return entry
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
