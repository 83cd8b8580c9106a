package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"lpst/src/common"
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type stubSMSSender struct {
	sent []string
	err  error
}

func (s *stubSMSSender) Send(ctx context.Context, mobile string, message string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, mobile)
	return "stub-ref", nil
}

type stubQueueProducer struct {
	queues   []string
	messages []string
}

func (p *stubQueueProducer) Produce(ctx context.Context, queue string, body string) error {
	p.queues = append(p.queues, queue)
	p.messages = append(p.messages, body)
	return nil
}

type BookingActionsTestSuite struct {
	suite.Suite
	mock   sqlmock.Sqlmock
	redis  redismock.ClientMock
	sender *stubSMSSender
	queue  *stubQueueProducer
	router *gin.Engine
}

func (s *BookingActionsTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	gdb, mock := newMockDB(s.T())
	db.NewDB(gdb)
	s.mock = mock

	client, rmock := redismock.NewClientMock()
	lib.NewRedisClient(client)
	s.redis = rmock

	s.sender = &stubSMSSender{}
	lib.SetSMSSender(s.sender)
	s.queue = &stubQueueProducer{}
	lib.SetQueueProducer(s.queue)

	router := gin.New()
	apiv1 := router.Group(apiPrefix)
	apiv1.Use(func(ctx *gin.Context) {
		ctx.Set("id", uint(1))
		ctx.Set("username", "frontdesk")
		ctx.Set("role", types.ROLE_ADMIN)
	})
	bookingActionHandlers(apiv1)
	s.router = router
}

func (s *BookingActionsTestSuite) postAction(form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, apiPrefix+"/bookings/actions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingActionsTestSuite) flash(w *httptest.ResponseRecorder) *lib.FlashMessage {
	for _, c := range w.Result().Cookies() {
		if c.Name != "flash" || c.Value == "" {
			continue
		}
		value, err := url.QueryUnescape(c.Value)
		s.Require().NoError(err)
		payload, err := base64.URLEncoding.DecodeString(value)
		s.Require().NoError(err)
		var f lib.FlashMessage
		s.Require().NoError(json.Unmarshal(payload, &f))
		return &f
	}
	return nil
}

func (s *BookingActionsTestSuite) assertFlash(w *httptest.ResponseRecorder, message string, severity lib.FlashSeverity) {
	s.Equal(http.StatusFound, w.Code)
	s.Equal(gridPath, w.Result().Header.Get("Location"))
	flash := s.flash(w)
	s.Require().NotNil(flash)
	s.Equal(message, flash.Message)
	s.Equal(severity, flash.Severity)
}

func (s *BookingActionsTestSuite) expectCSRF() {
	s.redis.ExpectGet("csrf:1").SetVal("tok-1")
}

func validForm(action string, bookingID string) url.Values {
	return url.Values{
		"action":     {action},
		"booking_id": {bookingID},
		"csrf_token": {"tok-1"},
	}
}

func regularBookingRows(checkIn time.Time, status types.BookingStatus, notes string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "resource_id", "admin_id", "client_name", "client_mobile",
		"booking_type", "status", "check_in", "payment_notes",
	}).AddRow(12, 3, 1, "Asha Rao", "+911234567890", "regular", string(status), checkIn, notes)
}

func advanceBookingRows(checkIn time.Time, advanceDate time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "resource_id", "admin_id", "client_name", "client_mobile",
		"booking_type", "status", "check_in", "advance_date", "payment_notes",
	}).AddRow(12, 3, 1, "Asha Rao", "+911234567890", "advanced", "ACTIVE", checkIn, advanceDate, "")
}

func (s *BookingActionsTestSuite) expectBookingLookup(rows *sqlmock.Rows) {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bookings"`)).WillReturnRows(rows)
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).AddRow(1, "frontdesk", types.ROLE_ADMIN))
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "resources"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "display_name", "custom_name"}).AddRow(3, "Room 101", ""))
}

func (s *BookingActionsTestSuite) expectBookingUpdate() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bookings" SET`)).WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()
}

func (s *BookingActionsTestSuite) expectSettings() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "setting_key", "setting_value"}))
}

func (s *BookingActionsTestSuite) expectInsert(table string) {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "` + table + `"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	s.mock.ExpectCommit()
}

func (s *BookingActionsTestSuite) expectFailedInsert(table string) {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "` + table + `"`)).
		WillReturnError(errors.New("insert failed"))
	s.mock.ExpectRollback()
}

func (s *BookingActionsTestSuite) TestRejectsMissingCSRFToken() {
	form := validForm("cancel_booking", "12")
	form.Del("csrf_token")

	w := s.postAction(form)

	s.assertFlash(w, "Invalid request", lib.FLASH_ERROR)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestRejectsForgedCSRFToken() {
	s.redis.ExpectGet("csrf:1").SetVal("something-else")

	w := s.postAction(validForm("cancel_booking", "12"))

	s.assertFlash(w, "Invalid request", lib.FLASH_ERROR)
	s.NoError(s.mock.ExpectationsWereMet())
	s.NoError(s.redis.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestRequiresBookingID() {
	s.expectCSRF()

	w := s.postAction(validForm("cancel_booking", ""))

	s.assertFlash(w, "Booking ID required", lib.FLASH_ERROR)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestRejectsUnknownAction() {
	s.expectCSRF()

	w := s.postAction(validForm("explode", "12"))

	s.assertFlash(w, "Invalid action", lib.FLASH_ERROR)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestRejectsNonNumericBookingID() {
	s.expectCSRF()

	w := s.postAction(validForm("checkout", "twelve"))

	s.assertFlash(w, "Booking not found", lib.FLASH_ERROR)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestUnknownBookingLeavesTableUntouched() {
	actions := []string{"cancel_advanced", "mark_paid", "checkout", "cancel_booking"}
	for i, action := range actions {
		if i > 0 {
			s.SetupTest()
		}
		s.expectCSRF()
		s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bookings"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := s.postAction(validForm(action, "999"))

		s.assertFlash(w, "Booking not found", lib.FLASH_ERROR)
		s.NoError(s.mock.ExpectationsWereMet())
		s.Empty(s.sender.sent)
	}
}

func (s *BookingActionsTestSuite) TestCancelBookingSuccess() {
	s.expectCSRF()
	s.expectBookingLookup(regularBookingRows(time.Now().Add(-10*time.Hour), types.BOOKING_ACTIVE, ""))
	s.expectBookingUpdate()
	s.expectSettings()
	s.expectInsert("sms_logs")
	s.expectInsert("booking_cancellations")

	w := s.postAction(validForm("cancel_booking", "12"))

	s.assertFlash(w, "Booking cancelled successfully! Room is now available.", lib.FLASH_SUCCESS)
	s.Equal([]string{"+911234567890"}, s.sender.sent)
	s.NoError(s.mock.ExpectationsWereMet())
	s.Empty(s.queue.messages)
}

func (s *BookingActionsTestSuite) TestCancelAdvancedBookingSuccess() {
	checkIn := time.Now().Add(48 * time.Hour)
	s.expectCSRF()
	s.expectBookingLookup(advanceBookingRows(checkIn, checkIn))
	s.expectBookingUpdate()
	s.expectSettings()
	s.expectInsert("sms_logs")
	s.expectInsert("booking_cancellations")

	w := s.postAction(validForm("cancel_advanced", "12"))

	s.assertFlash(w, "Advanced booking cancelled successfully! Room is now available.", lib.FLASH_SUCCESS)
	s.Equal([]string{"+911234567890"}, s.sender.sent)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestMarkPaidSuccess() {
	s.expectCSRF()
	s.expectBookingLookup(regularBookingRows(time.Now().Add(-10*time.Hour), types.BOOKING_ACTIVE, ""))
	s.expectBookingUpdate()
	s.expectSettings()
	s.expectInsert("sms_logs")
	s.expectInsert("payments")

	w := s.postAction(validForm("mark_paid", "12"))

	s.assertFlash(w, "Booking marked as paid! Room is now available.", lib.FLASH_SUCCESS)
	s.Equal([]string{"+911234567890"}, s.sender.sent)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestCheckoutSuccess() {
	s.expectCSRF()
	s.expectBookingLookup(regularBookingRows(time.Now().Add(-3*time.Hour), types.BOOKING_ACTIVE, ""))
	s.expectBookingUpdate()
	s.expectSettings()
	s.expectInsert("sms_logs")
	s.expectInsert("payments")

	w := s.postAction(validForm("checkout", "12"))

	s.assertFlash(w, "Checkout completed successfully!", lib.FLASH_SUCCESS)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *BookingActionsTestSuite) TestUpdateFailureReportsError() {
	s.expectCSRF()
	s.expectBookingLookup(regularBookingRows(time.Now().Add(-2*time.Hour), types.BOOKING_ACTIVE, ""))
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bookings" SET`)).
		WillReturnError(errors.New("connection reset"))
	s.mock.ExpectRollback()

	w := s.postAction(validForm("cancel_booking", "12"))

	s.assertFlash(w, "Failed to cancel booking", lib.FLASH_ERROR)
	s.Empty(s.sender.sent)
	s.NoError(s.mock.ExpectationsWereMet())
}

// SMS delivery and audit inserts are side effects. All of them failing
// at once must not roll back or hide a cancellation that already
// happened; the failed audit row goes to the retry queue instead.
func (s *BookingActionsTestSuite) TestSideEffectFailuresDoNotBlockCancellation() {
	s.expectCSRF()
	s.expectBookingLookup(regularBookingRows(time.Now().Add(-6*time.Hour), types.BOOKING_ACTIVE, ""))
	s.expectBookingUpdate()
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settings"`)).
		WillReturnError(errors.New("settings unavailable"))
	s.sender.err = errors.New("provider down")
	s.expectFailedInsert("sms_logs")
	s.expectFailedInsert("booking_cancellations")

	w := s.postAction(validForm("cancel_booking", "12"))

	s.assertFlash(w, "Booking cancelled successfully! Room is now available.", lib.FLASH_SUCCESS)
	s.NoError(s.mock.ExpectationsWereMet())

	s.Require().Len(s.queue.messages, 1)
	s.Equal(common.AuditRetryQueue, s.queue.queues[0])
	msg := s.queue.messages[0]
	s.Equal("cancellation", gjson.Get(msg, "kind").String())
	s.Equal(int64(12), gjson.Get(msg, "record.booking_id").Int())
}

// Re-running a cancel on an already-completed booking repeats the
// update, appends the note again and writes a second audit row.
func (s *BookingActionsTestSuite) TestRepeatedCancelReAppendsTrail() {
	states := []struct {
		status types.BookingStatus
		notes  string
	}{
		{types.BOOKING_ACTIVE, ""},
		{types.BOOKING_COMPLETED, " - Booking cancelled by admin"},
	}
	for i, state := range states {
		if i > 0 {
			s.SetupTest()
		}
		s.expectCSRF()
		s.expectBookingLookup(regularBookingRows(time.Now().Add(-4*time.Hour), state.status, state.notes))
		s.expectBookingUpdate()
		s.expectSettings()
		s.expectInsert("sms_logs")
		s.expectInsert("booking_cancellations")

		w := s.postAction(validForm("cancel_booking", "12"))

		s.assertFlash(w, "Booking cancelled successfully! Room is now available.", lib.FLASH_SUCCESS)
		s.NoError(s.mock.ExpectationsWereMet())
	}
}

func TestBookingActionsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingActionsTestSuite))
}
