// Package memory provides map-backed repository implementations for
// local development and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
	pkgerrors "clubgraph/pkg/errors"
)

// ClubRepository is a mutex-guarded, map-backed club store
type ClubRepository struct {
	mu    sync.RWMutex
	items map[string]*clubs.Club
}

// NewClubRepository creates an empty in-memory club repository
func NewClubRepository() *ClubRepository {
	return &ClubRepository{items: make(map[string]*clubs.Club)}
}

// FindPage returns one page of clubs matching the filter plus the total
// match count
func (r *ClubRepository) FindPage(ctx context.Context, filter ports.ClubFilter) ([]*clubs.Club, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	matched := make([]*clubs.Club, 0, len(r.items))
	for _, club := range r.items {
		if matchesClubFilter(club, filter) {
			matched = append(matched, copyClub(club))
		}
	}
	r.mu.RUnlock()

	sortClubs(matched, filter.SortBy, filter.SortOrder)

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	return matched[start:end], total, nil
}

// FindByID returns the club or a not-found error
func (r *ClubRepository) FindByID(ctx context.Context, id string) (*clubs.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	club, ok := r.items[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("club")
	}
	return copyClub(club), nil
}

// FindAll returns every club
func (r *ClubRepository) FindAll(ctx context.Context) ([]*clubs.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*clubs.Club, 0, len(r.items))
	for _, club := range r.items {
		all = append(all, copyClub(club))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

// Save inserts or replaces a club
func (r *ClubRepository) Save(ctx context.Context, club *clubs.Club) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[club.ID] = copyClub(club)
	return nil
}

// Delete removes a club; deleting an absent club is a not-found error
func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return pkgerrors.NewNotFoundError("club")
	}
	delete(r.items, id)
	return nil
}

func matchesClubFilter(club *clubs.Club, f ports.ClubFilter) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(club.Name), search) &&
			!strings.Contains(strings.ToLower(club.ShortName), search) &&
			!strings.Contains(strings.ToLower(club.City), search) {
			return false
		}
	}
	if f.League != "" && club.League != f.League {
		return false
	}
	if f.City != "" && !strings.EqualFold(club.City, f.City) {
		return false
	}
	if f.Country != "" && !strings.EqualFold(club.Country, f.Country) {
		return false
	}
	if f.IsActive != nil && club.IsActive != *f.IsActive {
		return false
	}
	if f.IsVerified != nil && club.IsVerified != *f.IsVerified {
		return false
	}
	if f.IsFeatured != nil && club.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.FoundedAfter != 0 && club.FoundedYear < f.FoundedAfter {
		return false
	}
	if f.FoundedBefore != 0 && club.FoundedYear > f.FoundedBefore {
		return false
	}
	return true
}

func sortClubs(items []*clubs.Club, sortBy, order string) {
	desc := order == "desc"
	sort.SliceStable(items, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "founded_year":
			less = items[i].FoundedYear < items[j].FoundedYear
		case "created_at":
			less = items[i].CreatedAt.Before(items[j].CreatedAt)
		case "updated_at":
			less = items[i].UpdatedAt.Before(items[j].UpdatedAt)
		default:
			less = strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		}
		if desc {
			return !less
		}
		return less
	})
}

func copyClub(c *clubs.Club) *clubs.Club {
	dup := *c
	return &dup
}
