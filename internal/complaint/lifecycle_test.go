package complaint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hostelhub/backend/internal/assets"
	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/kvstore"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"
)

// TestLifecycle_SubmitThenResolve walks the whole flow over a real in-memory
// substrate: a student files a complaint, the admin resolves it.
func TestLifecycle_SubmitThenResolve(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	store := storage.NewStorageService(kv)
	sink := new(MockSink)
	sink.On("Notify", mock.AnythingOfType("models.Event")).Return()
	svc := complaint.NewService(store, assets.NewStore(kv), sink)

	sess := &models.Session{Name: "Alice", Room: "B-12", Role: models.RoleStudent}

	created, errs, err := svc.Submit(sess, complaint.Submission{
		Title:       "Leaky faucet in room",
		Category:    "Plumbing & Water",
		Priority:    models.PriorityMedium,
		Description: "Water drips constantly from the bathroom tap",
		Image:       sampleImage,
	})
	require.NoError(t, err)
	require.Empty(t, errs)

	// The persisted record carries an asset reference, not the inline blob.
	list := store.LoadComplaints()
	require.Len(t, list, 1)
	persisted := list[0]
	assert.Equal(t, models.StatusPending, persisted.Status)
	assert.Equal(t, "Alice", persisted.StudentName)
	assert.Equal(t, "B-12", persisted.StudentRoom)
	assert.True(t, assets.IsRef(persisted.Image), "image is detached to the asset store")

	require.NoError(t, svc.SetStatus(created.ID, models.StatusResolved))

	after := store.LoadComplaints()
	require.Len(t, after, 1)
	assert.Equal(t, models.StatusResolved, after[0].Status)

	// Everything except status is unchanged.
	want := persisted
	want.Status = models.StatusResolved
	assert.Equal(t, want, after[0])

	// Resolving backwards is legal too; there is no state machine.
	require.NoError(t, svc.SetStatus(created.ID, models.StatusPending))
	assert.Equal(t, models.StatusPending, store.LoadComplaints()[0].Status)
}

const sampleImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="
