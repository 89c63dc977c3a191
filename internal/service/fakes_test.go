package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/deppfellow/shanyrak/internal/errs"
	"github.com/deppfellow/shanyrak/internal/model/ad"
	"github.com/deppfellow/shanyrak/internal/model/comment"
	"github.com/deppfellow/shanyrak/internal/model/favorite"
	"github.com/deppfellow/shanyrak/internal/model/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func noRows(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	require.Equal(t, status, httpErr.Status)
}

func newMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// ------------------------------------------------------------

type fakeUsers struct {
	rows    map[int64]*user.User
	nextID  int64
	updates int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: map[int64]*user.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *user.User) (int64, error) {
	for _, existing := range f.rows {
		if existing.Username == u.Username {
			return 0, &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_username_key"}
		}
	}
	f.nextID++
	stored := *u
	stored.ID = f.nextID
	f.rows[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, noRows("users")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByIDForUpdate(ctx context.Context, id int64) (*user.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range f.rows {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, noRows("users")
}

func (f *fakeUsers) Update(_ context.Context, u *user.User) error {
	if _, ok := f.rows[u.ID]; !ok {
		return noRows("users")
	}
	f.updates++
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

// ------------------------------------------------------------

type fakeAds struct {
	rows     map[int64]*ad.Ad
	nextID   int64
	updates  int
	comments *fakeComments
	favs     *fakeFavorites
}

func newFakeAds() *fakeAds {
	return &fakeAds{rows: map[int64]*ad.Ad{}}
}

func (f *fakeAds) seed(a ad.Ad) int64 {
	f.nextID++
	a.ID = f.nextID
	f.rows[a.ID] = &a
	return a.ID
}

func (f *fakeAds) Create(_ context.Context, a *ad.Ad) (int64, error) {
	return f.seed(*a), nil
}

func (f *fakeAds) GetByID(_ context.Context, id int64) (*ad.Details, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, noRows("ads")
	}

	var total int64
	if f.comments != nil {
		for _, c := range f.comments.rows {
			if c.AdID == id {
				total++
			}
		}
	}
	return &ad.Details{Ad: *a, TotalComments: total}, nil
}

func (f *fakeAds) GetForUpdate(_ context.Context, id int64) (*ad.Ad, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, noRows("ads")
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAds) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeAds) List(_ context.Context, filter ad.Filter) (*ad.Page, error) {
	return &ad.Page{}, nil
}

func (f *fakeAds) Update(_ context.Context, a *ad.Ad) error {
	f.updates++
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

// Delete mimics ON DELETE CASCADE.
func (f *fakeAds) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return noRows("ads")
	}
	delete(f.rows, id)

	if f.comments != nil {
		for cid, c := range f.comments.rows {
			if c.AdID == id {
				delete(f.comments.rows, cid)
			}
		}
	}
	if f.favs != nil {
		for key := range f.favs.rows {
			if key[1] == id {
				delete(f.favs.rows, key)
			}
		}
	}
	return nil
}

// ------------------------------------------------------------

type fakeComments struct {
	rows    map[int64]*comment.Comment
	nextID  int64
	updates int
	deletes int
}

func newFakeComments() *fakeComments {
	return &fakeComments{rows: map[int64]*comment.Comment{}}
}

func (f *fakeComments) Create(_ context.Context, c *comment.Comment) (int64, error) {
	f.nextID++
	stored := *c
	stored.ID = f.nextID
	f.rows[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeComments) ListByAd(_ context.Context, adID int64) ([]comment.Comment, error) {
	var out []comment.Comment
	for _, c := range f.rows {
		if c.AdID == adID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeComments) GetForUpdate(_ context.Context, id int64) (*comment.Comment, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, noRows("comments")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeComments) Update(_ context.Context, c *comment.Comment) error {
	f.updates++
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeComments) Delete(_ context.Context, id int64) error {
	f.deletes++
	delete(f.rows, id)
	return nil
}

// ------------------------------------------------------------

type fakeFavorites struct {
	rows  map[[2]int64]bool
	order [][2]int64
}

func newFakeFavorites() *fakeFavorites {
	return &fakeFavorites{rows: map[[2]int64]bool{}}
}

func (f *fakeFavorites) Add(_ context.Context, userID, adID int64) (bool, error) {
	key := [2]int64{userID, adID}
	if f.rows[key] {
		return false, nil
	}
	f.rows[key] = true
	f.order = append(f.order, key)
	return true, nil
}

func (f *fakeFavorites) ListByUser(_ context.Context, userID int64) ([]favorite.Item, error) {
	var out []favorite.Item
	for _, key := range f.order {
		if key[0] == userID && f.rows[key] {
			out = append(out, favorite.Item{ID: key[1]})
		}
	}
	return out, nil
}

func (f *fakeFavorites) Remove(_ context.Context, userID, adID int64) (bool, error) {
	key := [2]int64{userID, adID}
	if !f.rows[key] {
		return false, nil
	}
	delete(f.rows, key)
	return true, nil
}
