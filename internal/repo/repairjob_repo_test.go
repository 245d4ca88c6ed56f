package repo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"repair-tracker/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.RepairJob{}))
	return db
}

func newJob(owner uint, customer string) *domain.RepairJob {
	return &domain.RepairJob{
		UserID:           owner,
		CustomerName:     customer,
		DeviceType:       "laptop",
		DeviceModel:      "XPS 13",
		IssueDescription: "does not boot",
		Status:           domain.StatusDefault,
		Priority:         domain.PriorityDefault,
		Images:           domain.StringList{},
	}
}

func TestListByOwner_ScopedAndNewestFirst(t *testing.T) {
	t.Parallel()

	r := NewRepairJobRepo(newTestDB(t))

	a := newJob(1, "A")
	b := newJob(1, "B")
	c := newJob(1, "C")
	other := newJob(2, "other")
	for _, j := range []*domain.RepairJob{a, b, c, other} {
		require.NoError(t, r.Create(j))
	}

	jobs, err := r.ListByOwner(1)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	// reverse insertion order: C, B, A
	require.Equal(t, "C", jobs[0].CustomerName)
	require.Equal(t, "B", jobs[1].CustomerName)
	require.Equal(t, "A", jobs[2].CustomerName)
}

func TestListByOwner_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	r := NewRepairJobRepo(newTestDB(t))
	jobs, err := r.ListByOwner(99)
	require.NoError(t, err)
	require.NotNil(t, jobs)
	require.Empty(t, jobs)
}

func TestFindOwned_OtherOwnerLooksAbsent(t *testing.T) {
	t.Parallel()

	r := NewRepairJobRepo(newTestDB(t))
	j := newJob(1, "A")
	require.NoError(t, r.Create(j))

	got, err := r.FindOwned(1, j.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = r.FindOwned(2, j.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = r.FindOwned(1, j.ID+100)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUpdate_RefreshesUpdatedAt(t *testing.T) {
	t.Parallel()

	r := NewRepairJobRepo(newTestDB(t))
	j := newJob(1, "A")
	require.NoError(t, r.Create(j))
	before := j.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, r.Update(j)) // no field changed

	got, err := r.FindOwned(1, j.ID)
	require.NoError(t, err)
	require.True(t, got.UpdatedAt.After(before), "updated_at must refresh on every update")
}

func TestDeleteOwned(t *testing.T) {
	t.Parallel()

	r := NewRepairJobRepo(newTestDB(t))
	j := newJob(1, "A")
	require.NoError(t, r.Create(j))

	require.ErrorIs(t, r.DeleteOwned(2, j.ID), domain.ErrNotFound)

	require.NoError(t, r.DeleteOwned(1, j.ID))
	got, err := r.FindOwned(1, j.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	require.ErrorIs(t, r.DeleteOwned(1, j.ID), domain.ErrNotFound)
}

func TestImages_RoundTrip(t *testing.T) {
	t.Parallel()

	r := NewRepairJobRepo(newTestDB(t))
	j := newJob(1, "A")
	j.Images = domain.StringList{"/uploads/x_1.jpg", "/uploads/y_2.jpg"}
	require.NoError(t, r.Create(j))

	got, err := r.FindOwned(1, j.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StringList{"/uploads/x_1.jpg", "/uploads/y_2.jpg"}, got.Images)
}
