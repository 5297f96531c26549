package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Astemirdum/library-management/library/internal/model"
	"go.uber.org/zap"
)

// Tx is a view of the entity tables inside one transaction.
// Getters return copies; changes become visible through Put/Delete only.
type Tx interface {
	Student(id string) (model.Student, bool)
	Students() []model.Student
	PutStudent(s model.Student)
	DeleteStudent(id string)

	Book(id string) (model.Book, bool)
	Books() []model.Book
	PutBook(b model.Book)
	DeleteBook(id string)

	Librarian(id string) (model.Librarian, bool)
	Librarians() []model.Librarian
	PutLibrarian(l model.Librarian)
	DeleteLibrarian(id string)

	User(username string) (model.User, bool)
}

type Repository interface {
	// View runs fn under a shared lock. Writes made by fn are discarded.
	View(ctx context.Context, fn func(tx Tx) error) error
	// Update runs fn under an exclusive lock and commits its writes
	// only when fn returns nil.
	Update(ctx context.Context, fn func(tx Tx) error) error
}

type tables struct {
	students   map[string]model.Student
	books      map[string]model.Book
	librarians map[string]model.Librarian
	users      map[string]model.User
}

type repository struct {
	mu  sync.RWMutex
	db  tables
	log *zap.Logger
}

func NewRepository(seed Seed, log *zap.Logger) (*repository, error) {
	r := &repository{
		db: tables{
			students:   make(map[string]model.Student, len(seed.Students)),
			books:      make(map[string]model.Book, len(seed.Books)),
			librarians: make(map[string]model.Librarian, len(seed.Librarians)),
			users:      make(map[string]model.User, len(seed.Users)),
		},
		log: log.Named("repo"),
	}
	for _, s := range seed.Students {
		r.db.students[s.StudentID] = s.Clone()
	}
	for _, b := range seed.Books {
		r.db.books[b.BookID] = b
	}
	for _, l := range seed.Librarians {
		r.db.librarians[l.LibrarianID] = l
	}
	for _, u := range seed.Users {
		r.db.users[u.Username] = u
	}
	r.log.Info("store seeded",
		zap.Int("students", len(r.db.students)),
		zap.Int("books", len(r.db.books)),
		zap.Int("librarians", len(r.db.librarians)),
		zap.Int("users", len(r.db.users)),
	)
	return r, nil
}

func (r *repository) View(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(newTx(&r.db))
}

func (r *repository) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	t := newTx(&r.db)
	if err := fn(t); err != nil {
		return err
	}
	t.commit()
	return nil
}

// change is a staged put, or a delete when deleted is set.
type change[T any] struct {
	value   T
	deleted bool
}

type tx struct {
	db         *tables
	students   map[string]change[model.Student]
	books      map[string]change[model.Book]
	librarians map[string]change[model.Librarian]
}

func newTx(db *tables) *tx {
	return &tx{
		db:         db,
		students:   map[string]change[model.Student]{},
		books:      map[string]change[model.Book]{},
		librarians: map[string]change[model.Librarian]{},
	}
}

func lookup[T any](staged map[string]change[T], committed map[string]T, id string) (T, bool) {
	if c, ok := staged[id]; ok {
		return c.value, !c.deleted
	}
	v, ok := committed[id]
	return v, ok
}

func list[T any](staged map[string]change[T], committed map[string]T) []T {
	ids := make([]string, 0, len(committed)+len(staged))
	for id := range committed {
		if _, ok := staged[id]; !ok {
			ids = append(ids, id)
		}
	}
	for id, c := range staged {
		if !c.deleted {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	items := make([]T, 0, len(ids))
	for _, id := range ids {
		v, _ := lookup(staged, committed, id)
		items = append(items, v)
	}
	return items
}

func apply[T any](staged map[string]change[T], committed map[string]T) {
	for id, c := range staged {
		if c.deleted {
			delete(committed, id)
			continue
		}
		committed[id] = c.value
	}
}

func (t *tx) Student(id string) (model.Student, bool) {
	s, ok := lookup(t.students, t.db.students, id)
	return s.Clone(), ok
}

func (t *tx) Students() []model.Student {
	items := list(t.students, t.db.students)
	for i := range items {
		items[i] = items[i].Clone()
	}
	return items
}

func (t *tx) PutStudent(s model.Student) {
	t.students[s.StudentID] = change[model.Student]{value: s.Clone()}
}

func (t *tx) DeleteStudent(id string) {
	t.students[id] = change[model.Student]{deleted: true}
}

func (t *tx) Book(id string) (model.Book, bool) {
	return lookup(t.books, t.db.books, id)
}

func (t *tx) Books() []model.Book {
	return list(t.books, t.db.books)
}

func (t *tx) PutBook(b model.Book) {
	t.books[b.BookID] = change[model.Book]{value: b}
}

func (t *tx) DeleteBook(id string) {
	t.books[id] = change[model.Book]{deleted: true}
}

func (t *tx) Librarian(id string) (model.Librarian, bool) {
	return lookup(t.librarians, t.db.librarians, id)
}

func (t *tx) Librarians() []model.Librarian {
	return list(t.librarians, t.db.librarians)
}

func (t *tx) PutLibrarian(l model.Librarian) {
	t.librarians[l.LibrarianID] = change[model.Librarian]{value: l}
}

func (t *tx) DeleteLibrarian(id string) {
	t.librarians[id] = change[model.Librarian]{deleted: true}
}

func (t *tx) User(username string) (model.User, bool) {
	u, ok := t.db.users[username]
	return u, ok
}

func (t *tx) commit() {
	apply(t.students, t.db.students)
	apply(t.books, t.db.books)
	apply(t.librarians, t.db.librarians)
}
