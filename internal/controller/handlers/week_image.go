package handlers

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/smartsched/smartsched/internal/model"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

const (
	imageWidth      = 1000
	imageHeight     = 620
	headerHeight    = 60
	leftLabelsWidth = 70
	dayPaddingX     = 6
	totalWeekdays   = 7
	defaultMinHour  = 8
	defaultMaxHour  = 20
)

var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}
	openColor      = color.RGBA{133, 193, 85, 220}
	openTextColor  = color.RGBA{20, 24, 28, 230}
)

// weekdayOrder lays the columns out Monday-first.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// hourBounds picks the displayed hour range from the configured intervals so
// the image does not waste space on the night hours.
func hourBounds(availability model.WeeklyAvailability) (int, int) {
	minHour, maxHour := 24, 0
	for _, intervals := range availability {
		for _, interval := range intervals {
			if interval.Start.Hour() < minHour {
				minHour = interval.Start.Hour()
			}
			endHour := interval.End.Hour()
			if interval.End.Minute() > 0 {
				endHour++
			}
			if endHour > maxHour {
				maxHour = endHour
			}
		}
	}
	if minHour >= maxHour {
		return defaultMinHour, defaultMaxHour
	}
	return minHour, maxHour
}

// RenderAvailabilityWeek draws the employee's weekly availability as a PNG.
func RenderAvailabilityWeek(employee *model.Employee) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	dc.SetColor(textColor)
	dc.DrawStringAnchored(
		fmt.Sprintf("%s — weekly availability", employee.Name),
		imageWidth/2, headerHeight/2, 0.5, 0.5,
	)

	minHour, maxHour := hourBounds(employee.Availability)
	gridHeight := float64(imageHeight - headerHeight - 20)
	hourHeight := gridHeight / float64(maxHour-minHour)
	dayWidth := float64(imageWidth-leftLabelsWidth) / totalWeekdays

	yForClock := func(clock model.TimeOfDay) float64 {
		offset := float64(clock.Hour()-minHour) + float64(clock.Minute())/60
		return float64(headerHeight) + offset*hourHeight
	}

	// Day columns with alternating backgrounds.
	for i, weekday := range weekdayOrder {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth

		if i%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, gridHeight)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(weekday.String(), x+dayWidth/2, headerHeight-14, 0.5, 0.5)
	}

	// Hour grid and labels.
	for hour := minHour; hour <= maxHour; hour++ {
		y := yForClock(model.TimeOfDay(hour * 60))

		dc.SetColor(hourLineColor)
		dc.SetLineWidth(0.5)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()

		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hour), leftLabelsWidth/2, y, 0.5, 0.5)
	}

	// Availability blocks.
	for i, weekday := range weekdayOrder {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth

		for _, interval := range employee.Availability.Intervals(weekday) {
			top := yForClock(interval.Start)
			bottom := yForClock(interval.End)

			dc.SetColor(openColor)
			dc.DrawRoundedRectangle(x+dayPaddingX, top, dayWidth-2*dayPaddingX, bottom-top, 6)
			dc.Fill()

			dc.SetColor(openTextColor)
			dc.DrawStringAnchored(interval.String(), x+dayWidth/2, top+12, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode availability image: %w", err)
	}
	return buf.Bytes(), nil
}

// HandleSchedule renders and sends an employee's weekly availability.
func (h *Handlers) HandleSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	employeeName := commandArgument(update.Message.Text)
	if employeeName == "" {
		h.sendText(ctx, b, chatID, "Usage: /schedule <employee name>")
		return
	}

	employee, err := h.store.FindEmployeeByName(ctx, employeeName)
	if err != nil {
		h.logger.Error("Failed to find employee", zap.Error(err), zap.String("employee", employeeName))
		h.sendText(ctx, b, chatID, "❌ Could not load the employee. Please try again.")
		return
	}
	if employee == nil {
		h.sendText(ctx, b, chatID, fmt.Sprintf("No employee found with name '%s'.", employeeName))
		return
	}

	imageData, err := RenderAvailabilityWeek(employee)
	if err != nil {
		h.logger.Error("Failed to render availability image", zap.Error(err), zap.String("employee", employee.Name))
		h.sendText(ctx, b, chatID, "❌ Could not render the schedule. Please try again.")
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "availability.png", Data: bytes.NewReader(imageData)},
		Caption: fmt.Sprintf("Weekly availability for %s", employee.Name),
	})
	if err != nil {
		h.logger.Error("Failed to send availability image", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}
