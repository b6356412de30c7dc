package repository

import (
	"maps"
	"slices"
	"sync"

	"github.com/project/studentlibrary/internal/entity"
	"github.com/samber/lo"
)

var _ LedgerRepository = (*ledgerRepository)(nil)

// ledgerRepository maps a student id to the loans the student holds, oldest
// first. Students without loans have no entry.
type ledgerRepository struct {
	mu    sync.RWMutex
	order []string
	loans map[string][]entity.Loan
	dirty bool
}

type memberLoans struct {
	MemberID string
	Loans    []entity.Loan
}

func NewLedger() *ledgerRepository {
	return &ledgerRepository{
		loans: make(map[string][]entity.Loan),
	}
}

func (l *ledgerRepository) Append(memberID string, loan entity.Loan) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.loans[memberID]; !ok {
		l.order = append(l.order, memberID)
	}
	l.loans[memberID] = append(l.loans[memberID], loan)
	l.dirty = true
}

// RemoveFirst removes the first loan of the student whose title matches
// title ignoring case.
func (l *ledgerRepository) RemoveFirst(memberID, title string) (entity.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	loans := l.loans[memberID]
	if len(loans) == 0 {
		return entity.Loan{}, entity.ErrNoLoans
	}

	i := slices.IndexFunc(loans, func(loan entity.Loan) bool {
		return loan.SameTitle(title)
	})
	if i < 0 {
		return entity.Loan{}, entity.ErrLoanNotFound
	}

	loan := loans[i]
	loans = slices.Delete(slices.Clone(loans), i, i+1)
	if len(loans) == 0 {
		delete(l.loans, memberID)
		l.order = lo.Without(l.order, memberID)
	} else {
		l.loans[memberID] = loans
	}
	l.dirty = true

	return loan, nil
}

func (l *ledgerRepository) Loans(memberID string) []entity.Loan {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.loans[memberID])
}

func (l *ledgerRepository) all() []memberLoans {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Map(l.order, func(id string, _ int) memberLoans {
		return memberLoans{MemberID: id, Loans: slices.Clone(l.loans[id])}
	})
}

func (l *ledgerRepository) reset(entries []memberLoans) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.order = nil
	l.loans = make(map[string][]entity.Loan, len(entries))
	for _, e := range entries {
		if len(e.Loans) == 0 {
			continue
		}
		if _, ok := l.loans[e.MemberID]; !ok {
			l.order = append(l.order, e.MemberID)
		}
		l.loans[e.MemberID] = slices.Clone(e.Loans)
	}
	l.dirty = false
}

func (l *ledgerRepository) Snapshot() func() {
	l.mu.RLock()
	order, loans, dirty := slices.Clone(l.order), maps.Clone(l.loans), l.dirty
	l.mu.RUnlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.order, l.loans, l.dirty = order, loans, dirty
	}
}

func (l *ledgerRepository) isDirty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dirty
}

func (l *ledgerRepository) markClean() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dirty = false
}
