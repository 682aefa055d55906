package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubgraph/application/ports"
	"clubgraph/domain/clubs"
	pkgerrors "clubgraph/pkg/errors"
	"clubgraph/tests/fixtures"
)

func seedClubs(t *testing.T, repo *ClubRepository, items ...*clubs.Club) {
	t.Helper()
	for _, club := range items {
		require.NoError(t, repo.Save(context.Background(), club))
	}
}

func TestClubRepository_SaveAndFindByID(t *testing.T) {
	repo := NewClubRepository()
	club := fixtures.NewClubBuilder().WithName("Arsenal").Build()
	seedClubs(t, repo, club)

	found, err := repo.FindByID(context.Background(), club.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", found.Name)

	// The stored copy is isolated from caller mutation.
	found.Name = "mutated"
	again, err := repo.FindByID(context.Background(), club.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", again.Name)
}

func TestClubRepository_FindByIDMissing(t *testing.T) {
	repo := NewClubRepository()

	_, err := repo.FindByID(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestClubRepository_FindPageFilters(t *testing.T) {
	repo := NewClubRepository()
	seedClubs(t, repo,
		fixtures.NewClubBuilder().WithName("Arsenal").WithCity("London").WithLeague(clubs.LeaguePremierLeague).WithVerified(true).Build(),
		fixtures.NewClubBuilder().WithName("Chelsea").WithCity("London").WithLeague(clubs.LeaguePremierLeague).Build(),
		fixtures.NewClubBuilder().WithName("Barcelona").WithCity("Barcelona").WithCountry("Spain").WithLeague(clubs.LeagueLaLiga).Build(),
	)

	page, total, err := repo.FindPage(context.Background(), ports.ClubFilter{League: clubs.LeaguePremierLeague})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, page, 2)

	verified := true
	page, total, err = repo.FindPage(context.Background(), ports.ClubFilter{IsVerified: &verified})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Arsenal", page[0].Name)

	page, total, err = repo.FindPage(context.Background(), ports.ClubFilter{Search: "chel"})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Chelsea", page[0].Name)

	_, total, err = repo.FindPage(context.Background(), ports.ClubFilter{Country: "spain"})
	require.NoError(t, err)
	assert.Equal(t, 1, total, "country match is case-insensitive")
}

func TestClubRepository_FindPageFoundedRange(t *testing.T) {
	repo := NewClubRepository()
	seedClubs(t, repo,
		fixtures.NewClubBuilder().WithName("Old FC").WithFoundedYear(1880).Build(),
		fixtures.NewClubBuilder().WithName("Mid FC").WithFoundedYear(1920).Build(),
		fixtures.NewClubBuilder().WithName("New FC").WithFoundedYear(1990).Build(),
	)

	page, total, err := repo.FindPage(context.Background(), ports.ClubFilter{
		FoundedAfter:  1900,
		FoundedBefore: 1950,
	})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Mid FC", page[0].Name)
}

func TestClubRepository_FindPageSorting(t *testing.T) {
	repo := NewClubRepository()
	seedClubs(t, repo,
		fixtures.NewClubBuilder().WithName("beta").WithFoundedYear(1950).Build(),
		fixtures.NewClubBuilder().WithName("Alpha").WithFoundedYear(1990).Build(),
		fixtures.NewClubBuilder().WithName("gamma").WithFoundedYear(1900).Build(),
	)

	page, _, err := repo.FindPage(context.Background(), ports.ClubFilter{SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "Alpha", page[0].Name, "name sort folds case")
	assert.Equal(t, "beta", page[1].Name)
	assert.Equal(t, "gamma", page[2].Name)

	page, _, err = repo.FindPage(context.Background(), ports.ClubFilter{SortBy: "founded_year", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, 1990, page[0].FoundedYear)
	assert.Equal(t, 1900, page[2].FoundedYear)
}

func TestClubRepository_FindPagePagination(t *testing.T) {
	repo := NewClubRepository()
	for i := 0; i < 5; i++ {
		seedClubs(t, repo, fixtures.NewClubBuilder().WithName(string(rune('a'+i))+" FC").Build())
	}

	page, total, err := repo.FindPage(context.Background(), ports.ClubFilter{Offset: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)

	// Offset past the end yields an empty page, not an error.
	page, total, err = repo.FindPage(context.Background(), ports.ClubFilter{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, page)
}

func TestClubRepository_DeleteMissing(t *testing.T) {
	repo := NewClubRepository()

	err := repo.Delete(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestClubRepository_CanceledContext(t *testing.T) {
	repo := NewClubRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.FindPage(ctx, ports.ClubFilter{})
	assert.ErrorIs(t, err, context.Canceled)

	err = repo.Save(ctx, fixtures.NewClubBuilder().Build())
	assert.ErrorIs(t, err, context.Canceled)
}
