package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/errors"
)

func newTestRepository(t *testing.T) AlertRepository {
	t.Helper()
	options := badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAlertRepository(db, slog.Default())
}

func emergencyAlert(patientID string, at time.Time) domain.Alert {
	return domain.Alert{
		ID:        uuid.New(),
		PatientID: patientID,
		Kind:      domain.AlertEmergency,
		Message:   "panic button",
		Severity:  domain.SeverityCritical,
		At:        at,
	}
}

func TestAlertRepository_Store_And_List(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	now := time.Now().UTC()

	// Given three alerts stored over time
	oldest := emergencyAlert("p-1", now.Add(-2*time.Minute))
	middle := emergencyAlert("p-2", now.Add(-time.Minute))
	newest := emergencyAlert("p-3", now)
	for _, alert := range []domain.Alert{oldest, middle, newest} {
		req.NoError(repo.StoreAlert(alert))
	}

	// When the unhandled list is read
	alerts, err := repo.ListUnhandled(10)
	req.NoError(err)

	// Then all three come back, newest first
	req.Len(alerts, 3)
	req.Equal(newest.ID, alerts[0].ID)
	req.Equal(middle.ID, alerts[1].ID)
	req.Equal(oldest.ID, alerts[2].ID)
	req.Equal(domain.SeverityCritical, alerts[0].Severity)
	req.False(alerts[0].Handled)
}

func TestAlertRepository_List_Honors_The_Limit(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		req.NoError(repo.StoreAlert(emergencyAlert("p-1", now.Add(time.Duration(i)*time.Second))))
	}

	alerts, err := repo.ListUnhandled(3)
	req.NoError(err)
	req.Len(alerts, 3)
}

func TestAlertRepository_ListByPatient_Filters_And_Keeps_Handled(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	now := time.Now().UTC()

	// Given alerts for two patients, one of them already handled
	mineOld := emergencyAlert("p-1", now.Add(-time.Minute))
	mineNew := emergencyAlert("p-1", now)
	other := emergencyAlert("p-2", now.Add(-30*time.Second))
	for _, alert := range []domain.Alert{mineOld, mineNew, other} {
		req.NoError(repo.StoreAlert(alert))
	}
	_, err := repo.MarkHandled(mineOld.ID, "d-42", "", now)
	req.NoError(err)

	// When the first patient's history is read
	alerts, err := repo.ListByPatient("p-1", 10)
	req.NoError(err)

	// Then only that patient's alerts come back, newest first,
	// the handled one included
	req.Len(alerts, 2)
	req.Equal(mineNew.ID, alerts[0].ID)
	req.Equal(mineOld.ID, alerts[1].ID)
	req.True(alerts[1].Handled)
}

func TestAlertRepository_ListByPatient_Honors_The_Limit(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		req.NoError(repo.StoreAlert(emergencyAlert("p-1", now.Add(time.Duration(i)*time.Second))))
	}

	alerts, err := repo.ListByPatient("p-1", 2)
	req.NoError(err)
	req.Len(alerts, 2)
}

func TestAlertRepository_MarkHandled(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)
	now := time.Now().UTC()
	alert := emergencyAlert("p-1", now)
	req.NoError(repo.StoreAlert(alert))

	// When a doctor takes the alert
	handled, err := repo.MarkHandled(alert.ID, "d-42", "called the patient back", now)
	req.NoError(err)

	// Then the stored copy carries the triage fields
	req.True(handled.Handled)
	req.Equal("d-42", handled.HandledBy)
	req.Equal("called the patient back", handled.Notes)

	// And it no longer shows up as unhandled
	alerts, err := repo.ListUnhandled(10)
	req.NoError(err)
	req.Empty(alerts)
}

func TestAlertRepository_MarkHandled_Unknown_Alert_Fails(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	_, err := repo.MarkHandled(uuid.New(), "d-42", "", time.Now().UTC())
	req.ErrorIs(err, errors.ErrPersistence)
}
