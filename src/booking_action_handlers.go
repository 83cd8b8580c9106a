package main

import (
	"fmt"
	"log"
	"lpst/src/common"
	"lpst/src/lib"
	"lpst/src/middlewares"
	"lpst/src/types"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// bookingActionHandlers routes the four admin-initiated booking state
// changes. Each branch follows the same shape: load, mutate, notify
// (best-effort), audit (best-effort), redirect with a flash message.
// The mutation is the only authoritative step.
func bookingActionHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.POST("/bookings/actions", func(ctx *gin.Context) {
		var body types.BookingActionRequestBody
		if err := ctx.ShouldBind(&body); err != nil {
			lib.RedirectWithMessage(ctx, gridPath, "Invalid request", lib.FLASH_ERROR)
			return
		}
		if !middlewares.VerifyCSRFToken(ctx, body.CSRFToken) {
			lib.RedirectWithMessage(ctx, gridPath, "Invalid request", lib.FLASH_ERROR)
			return
		}
		if body.BookingID == "" {
			lib.RedirectWithMessage(ctx, gridPath, "Booking ID required", lib.FLASH_ERROR)
			return
		}
		action := types.BookingAction(body.Action)
		if !action.IsValid() {
			lib.RedirectWithMessage(ctx, gridPath, "Invalid action", lib.FLASH_ERROR)
			return
		}
		id64, err := strconv.ParseUint(body.BookingID, 10, 64)
		if err != nil {
			lib.RedirectWithMessage(ctx, gridPath, "Booking not found", lib.FLASH_ERROR)
			return
		}
		bookingID := uint(id64)

		booking, err := common.GetBookingDetail(bookingID)
		if err != nil {
			log.Printf("Could not load booking [%d]: %s\n", bookingID, err.Error())
			lib.RedirectWithMessage(ctx, gridPath, "Booking not found", lib.FLASH_ERROR)
			return
		}
		adminID := ctx.GetUint("id")
		adminName := ctx.GetString("username")

		switch action {
		case types.ACTION_CANCEL_ADVANCED:
			if err := common.CancelAdvancedBooking(bookingID); err != nil {
				log.Printf("Could not cancel advanced booking [%d]: %s\n", bookingID, err.Error())
				lib.RedirectWithMessage(ctx, gridPath, "Failed to cancel advanced booking", lib.FLASH_ERROR)
				return
			}
			common.BestEffort("cancellation sms", func() error {
				return common.SendCancellationSMS(booking)
			})
			common.BestEffort("cancellation record", func() error {
				return common.RecordCancellation(booking, adminID, adminName, nil)
			})
			lib.RedirectWithMessage(ctx, gridPath, "Advanced booking cancelled successfully! Room is now available.", lib.FLASH_SUCCESS)

		case types.ACTION_MARK_PAID:
			duration := common.CalculateDuration(booking.CheckIn, time.Now())
			amount := common.CheckoutAmount(duration)
			if err := common.MarkBookingPaid(bookingID, amount); err != nil {
				log.Printf("Could not mark booking [%d] as paid: %s\n", bookingID, err.Error())
				lib.RedirectWithMessage(ctx, gridPath, "Failed to mark as paid", lib.FLASH_ERROR)
				return
			}
			common.BestEffort("checkout sms", func() error {
				return common.SendCheckoutConfirmationSMS(booking)
			})
			common.BestEffort("payment record", func() error {
				notes := fmt.Sprintf("Checkout payment for %s - Duration: %s", booking.Resource.DisplayLabel(), duration.Formatted)
				return common.RecordPayment(booking, types.PAYMENT_CHECKOUT, amount, adminID, notes)
			})
			lib.RedirectWithMessage(ctx, gridPath, "Booking marked as paid! Room is now available.", lib.FLASH_SUCCESS)

		case types.ACTION_CHECKOUT:
			duration := common.CalculateDuration(booking.CheckIn, time.Now())
			amount := common.CheckoutAmount(duration)
			if err := common.CompleteCheckout(bookingID, amount); err != nil {
				log.Printf("Could not complete checkout for booking [%d]: %s\n", bookingID, err.Error())
				lib.RedirectWithMessage(ctx, gridPath, "Failed to complete checkout", lib.FLASH_ERROR)
				return
			}
			common.BestEffort("checkout sms", func() error {
				return common.SendCheckoutConfirmationSMS(booking)
			})
			common.BestEffort("payment record", func() error {
				notes := fmt.Sprintf("Checkout completed for %s - Duration: %s", booking.Resource.DisplayLabel(), duration.Formatted)
				return common.RecordPayment(booking, types.PAYMENT_CHECKOUT_COMPLETE, amount, adminID, notes)
			})
			lib.RedirectWithMessage(ctx, gridPath, "Checkout completed successfully!", lib.FLASH_SUCCESS)

		case types.ACTION_CANCEL_BOOKING:
			duration := common.CalculateDuration(booking.CheckIn, time.Now())
			if err := common.CancelBooking(bookingID); err != nil {
				log.Printf("Could not cancel booking [%d]: %s\n", bookingID, err.Error())
				lib.RedirectWithMessage(ctx, gridPath, "Failed to cancel booking", lib.FLASH_ERROR)
				return
			}
			common.BestEffort("cancellation sms", func() error {
				return common.SendCancellationSMS(booking)
			})
			common.BestEffort("cancellation record", func() error {
				return common.RecordCancellation(booking, adminID, adminName, &duration)
			})
			lib.RedirectWithMessage(ctx, gridPath, "Booking cancelled successfully! Room is now available.", lib.FLASH_SUCCESS)
		}
	})
	return g
}
