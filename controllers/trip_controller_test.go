package controller_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripRows(id int, title, destination string) *sqlmock.Rows {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "title", "destination", "start_date", "end_date"}).
		AddRow(id, title, destination, start, end)
}

func emptyActivityRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "trip_id", "title", "date", "time", "description", "type"})
}

func TestCreateTrip_Created(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`INSERT INTO "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	req := jsonRequest(t, http.MethodPost, "/api/trips", map[string]any{
		"title":       "Japan Trip",
		"destination": "Tokyo",
		"startDate":   "2025-04-01",
		"endDate":     "2025-04-10",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Japan Trip", body["title"])
	assert.Equal(t, "Tokyo", body["destination"])
	assert.NotZero(t, body["ID"])
	activities, ok := body["activities"].([]any)
	require.True(t, ok, "activities must serialize as a list, not null")
	assert.Empty(t, activities)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrip_MissingFields_Validation(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	req := jsonRequest(t, http.MethodPost, "/api/trips", map[string]any{
		"title":     "Japan Trip",
		"startDate": "not-a-date",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	details := decodeBody(t, resp)["details"].(map[string]any)
	assert.Contains(t, details, "destination")
	assert.Contains(t, details, "startdate")
	assert.Contains(t, details, "enddate")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrips_IncludesCreatedTripOnce(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(tripRows(1, "Japan Trip", "Tokyo"))
	mock.ExpectQuery(`SELECT (.+) FROM "activities"`).
		WillReturnRows(emptyActivityRows())

	req := jsonRequest(t, http.MethodGet, "/api/trips", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	trips := decodeList(t, resp)
	require.Len(t, trips, 1)
	assert.Equal(t, "Japan Trip", trips[0]["title"])
	activities, ok := trips[0]["activities"].([]any)
	require.True(t, ok)
	assert.Empty(t, activities)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTrip_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := jsonRequest(t, http.MethodDelete, "/api/trips/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A miss must not touch the store beyond the lookup.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTrip_OK_MessageNamesTrip(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(tripRows(3, "Japan Trip", "Tokyo"))
	mock.ExpectExec(`UPDATE "trips" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := jsonRequest(t, http.MethodDelete, "/api/trips/3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Trip 'Japan Trip' was deleted successfully.", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddActivity_TripNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := jsonRequest(t, http.MethodPost, "/api/trips/42/activities", map[string]any{
		"title": "Visit Shrine",
		"date":  "2025-04-02",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddActivity_AppendsWithDefaultType(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	activityDate := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(tripRows(1, "Japan Trip", "Tokyo"))
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`SELECT (.+) FROM "trips"`).
		WillReturnRows(tripRows(1, "Japan Trip", "Tokyo"))
	mock.ExpectQuery(`SELECT (.+) FROM "activities"`).
		WillReturnRows(emptyActivityRows().
			AddRow(10, 1, "Visit Shrine", activityDate, "", "", "activity"))

	req := jsonRequest(t, http.MethodPost, "/api/trips/1/activities", map[string]any{
		"title": "Visit Shrine",
		"date":  "2025-04-02",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	activities := body["activities"].([]any)
	require.Len(t, activities, 1)
	added := activities[0].(map[string]any)
	assert.Equal(t, "Visit Shrine", added["title"])
	assert.Equal(t, "activity", added["type"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddActivity_RejectsUnknownType(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	req := jsonRequest(t, http.MethodPost, "/api/trips/1/activities", map[string]any{
		"title": "Visit Shrine",
		"date":  "2025-04-02",
		"type":  "cruise",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	details := decodeBody(t, resp)["details"].(map[string]any)
	assert.Contains(t, details, "type")
	assert.NoError(t, mock.ExpectationsWereMet())
}
