package repository

import (
	"iter"
	"slices"
	"sync"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/samber/lo"
)

var _ CatalogRepository = (*catalogRepository)(nil)

// catalogRepository keeps books in insertion order together with the cached
// sum of their copies.
type catalogRepository struct {
	mu     sync.RWMutex
	books  []entity.Book
	amount int
	nextID int
	dirty  bool
}

func NewCatalog() *catalogRepository {
	return &catalogRepository{nextID: 1}
}

func (c *catalogRepository) AddBook(book entity.Book) (entity.Book, error) {
	if err := book.Validate(); err != nil {
		return entity.Book{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	book.ID = c.nextID
	c.nextID++
	c.books = append(c.books, book)
	c.amount += book.Copies
	c.dirty = true

	return book, nil
}

func (c *catalogRepository) FindByTitle(title string) iter.Seq[entity.Book] {
	return c.find(func(b entity.Book) bool {
		return entity.SearchByTitle.Matches(b, title)
	})
}

func (c *catalogRepository) FindByAuthor(author string) iter.Seq[entity.Book] {
	return c.find(func(b entity.Book) bool {
		return entity.SearchByAuthor.Matches(b, author)
	})
}

func (c *catalogRepository) FindByGenre(genre string) iter.Seq[entity.Book] {
	return c.find(func(b entity.Book) bool {
		return entity.SearchByGenre.Matches(b, genre)
	})
}

func (c *catalogRepository) FindByYear(year int) iter.Seq[entity.Book] {
	return c.find(func(b entity.Book) bool {
		return b.Year == year
	})
}

// find filters a snapshot of the catalog taken now. The returned sequence
// can be ranged over any number of times.
func (c *catalogRepository) find(match func(entity.Book) bool) iter.Seq[entity.Book] {
	c.mu.RLock()
	books := slices.Clone(c.books)
	c.mu.RUnlock()

	return func(yield func(entity.Book) bool) {
		for _, b := range books {
			if match(b) && !yield(b) {
				return
			}
		}
	}
}

func (c *catalogRepository) DeleteByTitle(title string) ([]entity.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed, kept := lo.FilterReject(c.books, func(b entity.Book, _ int) bool {
		return b.SameTitle(title)
	})
	if len(removed) == 0 {
		return nil, entity.ErrBookNotFound
	}

	c.books = kept
	c.amount -= lo.SumBy(removed, func(b entity.Book) int { return b.Copies })
	c.dirty = true

	return removed, nil
}

// TakeCopy checks out one copy of the first book titled title.
func (c *catalogRepository) TakeCopy(title string) (entity.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(title)
	if i < 0 {
		return entity.Book{}, entity.ErrBookNotFound
	}
	if c.books[i].Copies <= 0 {
		return c.books[i], entity.ErrOutOfStock
	}

	c.books[i].Copies--
	c.amount--
	c.dirty = true

	return c.books[i], nil
}

// PutCopy gives one copy back to the first book titled title. It reports
// false and changes nothing when no such book exists.
func (c *catalogRepository) PutCopy(title string) (entity.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(title)
	if i < 0 {
		return entity.Book{}, false
	}

	c.books[i].Copies++
	c.amount++
	c.dirty = true

	return c.books[i], true
}

func (c *catalogRepository) indexOf(title string) int {
	return slices.IndexFunc(c.books, func(b entity.Book) bool {
		return b.SameTitle(title)
	})
}

func (c *catalogRepository) BooksAmount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.amount
}

func (c *catalogRepository) Books() []entity.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.books)
}

func (c *catalogRepository) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// reset replaces the catalog with loaded books. Identifiers continue after
// the largest loaded one.
func (c *catalogRepository) reset(books []entity.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = slices.Clone(books)
	c.amount = lo.SumBy(books, func(b entity.Book) int { return b.Copies })
	c.nextID = 1
	if len(books) > 0 {
		c.nextID = lo.MaxBy(books, func(a, b entity.Book) bool { return a.ID > b.ID }).ID + 1
	}
	c.dirty = false
}

func (c *catalogRepository) Snapshot() func() {
	c.mu.RLock()
	books, amount, nextID, dirty := slices.Clone(c.books), c.amount, c.nextID, c.dirty
	c.mu.RUnlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.books, c.amount, c.nextID, c.dirty = books, amount, nextID, dirty
	}
}

func (c *catalogRepository) isDirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

func (c *catalogRepository) markClean() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = false
}
