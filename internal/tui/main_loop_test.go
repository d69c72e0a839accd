// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-paw-finder/internal/mock"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type loopFixture struct {
	model     mainLoopModel
	paginator *mock.MockPaginator
	session   *mock.MockSession
	favorites *mock.MockFavoritesStore
	browser   *mock.MockFavoritesBrowser
	matcher   *mock.MockMatcher
}

var testUser = models.User{Name: "Ann", Email: "ann@example.com", ZipCode: "10001", Favorites: []string{}}

func newTestLoop(t *testing.T) loopFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := loopFixture{
		paginator: mock.NewMockPaginator(ctrl),
		session:   mock.NewMockSession(ctrl),
		favorites: mock.NewMockFavoritesStore(ctrl),
		browser:   mock.NewMockFavoritesBrowser(ctrl),
		matcher:   mock.NewMockMatcher(ctrl),
	}
	services := &service.ClientServices{
		Session:   f.session,
		Favorites: f.favorites,
		Paginator: f.paginator,
		Browser:   f.browser,
		Matcher:   f.matcher,
	}
	f.model = newMainLoopModel(context.Background(), services, testUser)
	f.model.loading = false
	return f
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(mainLoopModel)
	require.True(t, ok)
	return mm, cmd
}

var pageOne = models.Page{Number: 1, Size: 6, Total: 8, HasNext: true, Dogs: []models.Dog{
	{ID: "a", Name: "Rex", Img: "https://img/a.jpg"},
	{ID: "b", Name: "Max"},
}}

// ── search results ──

func TestMainLoop_SearchPageInstalled(t *testing.T) {
	f := newTestLoop(t)
	f.model.loading = true
	f.model.errMsg = "old"

	m, cmd := update(t, f.model, searchPageMsg{page: pageOne})

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, pageOne, m.search.page)
}

func TestMainLoop_StaleResultIgnored(t *testing.T) {
	f := newTestLoop(t)
	f.model.loading = true
	f.model.search.setPage(pageOne)

	m, cmd := update(t, f.model, searchPageMsg{err: service.ErrStaleResult})

	assert.Nil(t, cmd)
	assert.True(t, m.loading)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, pageOne, m.search.page)
}

func TestMainLoop_FailureKeepsPage(t *testing.T) {
	f := newTestLoop(t)

	m, _ := update(t, f.model, searchPageMsg{page: pageOne, err: service.ErrZipCodeRequired})

	assert.Equal(t, pageOne, m.search.page)
	assert.Equal(t, "Set your zip code (z) to sort by distance", m.errMsg)
}

func TestMainLoop_SessionExpiredEndsLoop(t *testing.T) {
	f := newTestLoop(t)

	m, cmd := update(t, f.model, searchPageMsg{err: service.ErrSessionExpired})

	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

// ── search keys ──

func TestMainLoop_SortKeyAppliesNextSort(t *testing.T) {
	f := newTestLoop(t)

	f.paginator.EXPECT().Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.SearchFilter) (models.Page, error) {
			assert.Equal(t, searchSorts[1], filter.Sort)
			return pageOne, nil
		})

	m, cmd := update(t, f.model, runes("s"))
	assert.True(t, m.loading)
	assert.Equal(t, 1, m.search.sortIdx)

	got, ok := findMsg[searchPageMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, pageOne, got.page)
}

func TestMainLoop_FilterFormAppliesOnEnter(t *testing.T) {
	f := newTestLoop(t)

	m, _ := update(t, f.model, runes("/"))
	require.True(t, m.search.editing)

	m, _ = update(t, m, runes("Pug"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, filterZipCodes, m.search.focus)
	m, _ = update(t, m, runes("10001"))

	f.paginator.EXPECT().Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.SearchFilter) (models.Page, error) {
			assert.Equal(t, []string{"Pug"}, filter.Breeds)
			assert.Equal(t, []string{"10001"}, filter.ZipCodes)
			return pageOne, nil
		})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.search.editing)
	_, ok := findMsg[searchPageMsg](collectMsgs(cmd))
	assert.True(t, ok)
}

func TestMainLoop_FilterFormKeepsTypedLetters(t *testing.T) {
	f := newTestLoop(t)

	m, _ := update(t, f.model, runes("/"))
	// "q" and "s" are shortcuts outside the form.
	m, _ = update(t, m, runes("qs"))

	assert.True(t, m.search.editing)
	assert.Equal(t, "qs", m.search.form[filterBreeds].Value())
	assert.Equal(t, 0, m.search.sortIdx)
}

func TestMainLoop_TabCompletesBreed(t *testing.T) {
	f := newTestLoop(t)

	m, _ := update(t, f.model, breedsLoadedMsg{breeds: []string{"Labrador Retriever", "Pug"}})
	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("Lab"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, filterBreeds, m.search.focus)
	assert.Equal(t, "Labrador Retriever", m.search.form[filterBreeds].Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, filterZipCodes, m.search.focus)
}

func TestMainLoop_BadAgeShowsError(t *testing.T) {
	f := newTestLoop(t)
	f.model.search.form[filterAgeMin].SetValue("x")

	m, cmd := update(t, f.model, runes("s"))

	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, errInvalidAge.Error())
}

func TestMainLoop_NextPage(t *testing.T) {
	f := newTestLoop(t)
	f.model.search.setPage(pageOne)

	pageTwo := models.Page{Number: 2, Dogs: []models.Dog{{ID: "c"}}}
	f.paginator.EXPECT().Next(gomock.Any()).Return(pageTwo, nil)

	_, cmd := update(t, f.model, tea.KeyMsg{Type: tea.KeyRight})
	got, ok := findMsg[searchPageMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, pageTwo, got.page)
}

func TestMainLoop_PageBoundsAreLocal(t *testing.T) {
	f := newTestLoop(t)
	f.model.search.setPage(models.Page{Number: 1, HasNext: false, Dogs: pageOne.Dogs})

	_, cmd := update(t, f.model, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	_, cmd = update(t, f.model, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
}

func TestMainLoop_ToggleFavorite(t *testing.T) {
	f := newTestLoop(t)
	f.model.search.setPage(pageOne)
	f.model.search.moveCursor(1)

	f.favorites.EXPECT().Toggle(gomock.Any(), "b").Return(true, nil)

	_, cmd := update(t, f.model, runes("f"))
	got, ok := findMsg[favoriteToggledMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, favoriteToggledMsg{id: "b", on: true}, got)
}

func TestMainLoop_FavoriteToggledRefreshesProfile(t *testing.T) {
	f := newTestLoop(t)

	withFav := testUser.Clone()
	withFav.Favorites = []string{"b"}
	f.session.EXPECT().Profile().Return(withFav, true)

	m, cmd := update(t, f.model, favoriteToggledMsg{id: "b", on: true})

	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"b"}, m.user.Favorites)
	assert.Equal(t, "Added to favourites", m.status)
}

// ── zip prompt ──

func TestMainLoop_ZipPrompt(t *testing.T) {
	f := newTestLoop(t)

	m, _ := update(t, f.model, runes("z"))
	require.True(t, m.editingZip)
	assert.Equal(t, "10001", m.zipInput.Value())

	m.zipInput.SetValue("60601")
	updated := testUser.Clone()
	updated.ZipCode = "60601"
	f.session.EXPECT().UpdateZipCode(gomock.Any(), "60601").Return(updated, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := findMsg[zipUpdatedMsg](collectMsgs(cmd))
	require.True(t, ok)

	f.paginator.EXPECT().Filter().Return(models.SearchFilter{})
	m, _ = update(t, m, got)
	assert.False(t, m.editingZip)
	assert.Equal(t, "60601", m.user.ZipCode)
	assert.Equal(t, "Zip code set to 60601", m.status)
	assert.False(t, m.loading)
}

func TestMainLoop_ZipUpdateReloadsDistanceSort(t *testing.T) {
	f := newTestLoop(t)
	f.model.editingZip = true

	f.paginator.EXPECT().Filter().Return(models.SearchFilter{Sort: models.SortOption{Distance: models.Nearest}})

	m, cmd := update(t, f.model, zipUpdatedMsg{user: testUser})
	assert.NotNil(t, cmd)
	assert.True(t, m.loading)
}

func TestMainLoop_ZipPromptEscCancels(t *testing.T) {
	f := newTestLoop(t)

	m, _ := update(t, f.model, runes("z"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.editingZip)
	assert.Nil(t, cmd)
}

// ── favourites tab ──

func TestMainLoop_SwitchTabBrowsesFavorites(t *testing.T) {
	f := newTestLoop(t)

	favPage := models.Page{Number: 1, Total: 1, Dogs: []models.Dog{{ID: "b"}}}
	f.browser.EXPECT().Browse(gomock.Any(), favoriteSorts[0], 1).Return(favPage, nil)

	m, cmd := update(t, f.model, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabFavorites, m.tab)

	got, ok := findMsg[favoritesPageMsg](collectMsgs(cmd))
	require.True(t, ok)

	m, _ = update(t, m, got)
	assert.Equal(t, favPage, m.favorites.page)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabSearch, m.tab)
}

func TestMainLoop_FavoritesOutOfRangeStepsBack(t *testing.T) {
	f := newTestLoop(t)
	f.model.tab = tabFavorites
	f.model.favorites.page = models.Page{Number: 2}

	f.browser.EXPECT().Browse(gomock.Any(), favoriteSorts[0], 1).Return(models.Page{Number: 1}, nil)

	m, cmd := update(t, f.model, favoritesPageMsg{err: service.ErrPageOutOfRange})
	assert.True(t, m.loading)
	got, ok := findMsg[favoritesPageMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, 1, got.page.Number)
}

func TestMainLoop_Match(t *testing.T) {
	f := newTestLoop(t)
	f.model.tab = tabFavorites

	match := models.Match{DogID: "b", Dog: models.Dog{ID: "b", Name: "Max"}, DistanceKm: 3.2}
	f.matcher.EXPECT().Match(gomock.Any()).Return(match, nil)

	m, cmd := update(t, f.model, runes("m"))
	assert.True(t, m.loading)
	got, ok := findMsg[matchDoneMsg](collectMsgs(cmd))
	require.True(t, ok)

	m, _ = update(t, m, got)
	require.NotNil(t, m.favorites.match)
	assert.Equal(t, "b", m.favorites.match.DogID)
	assert.Contains(t, m.favorites.view(), "3.2 km from you")
}

func TestMainLoop_MatchWithoutFavorites(t *testing.T) {
	f := newTestLoop(t)
	f.model.tab = tabFavorites

	m, _ := update(t, f.model, matchDoneMsg{err: service.ErrNoFavorites})
	assert.Nil(t, m.favorites.match)
	assert.Equal(t, "Add some favourites first", m.errMsg)
}

// ── logout / quit ──

func TestMainLoop_Logout(t *testing.T) {
	f := newTestLoop(t)

	f.session.EXPECT().Logout(gomock.Any()).Return(nil)

	_, cmd := update(t, f.model, runes("L"))
	got, ok := findMsg[logoutDoneMsg](collectMsgs(cmd))
	require.True(t, ok)

	m, cmd := update(t, f.model, got)
	assert.True(t, m.logout)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_QuitKeepsSession(t *testing.T) {
	f := newTestLoop(t)

	m, cmd := update(t, f.model, runes("q"))
	assert.False(t, m.logout)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_CopyError(t *testing.T) {
	f := newTestLoop(t)

	m, cmd := update(t, f.model, copiedMsg{err: errors.New("no clipboard utility")})
	assert.Nil(t, cmd)
	assert.Equal(t, "no clipboard utility", m.errMsg)
}

func TestMainLoop_ClearStatus(t *testing.T) {
	f := newTestLoop(t)
	f.model.status = "Photo URL copied"

	m, _ := update(t, f.model, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestMainLoop_View(t *testing.T) {
	f := newTestLoop(t)
	f.model.search.setPage(pageOne)
	f.favorites.EXPECT().Contains(gomock.Any()).Return(false).AnyTimes()

	out := f.model.View()
	assert.Contains(t, out, "Ann <ann@example.com> · zip 10001")
	assert.Contains(t, out, "Favourites (0)")
	assert.Contains(t, out, "Rex")
}
