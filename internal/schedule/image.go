package schedule

// Week-view renderer for the admin /schedule command. Draws a 7-day grid with
// one column per day and the booked slots as rounded rectangles.

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/sashakmakeup/booking_bot/internal/formatting"
	"github.com/sashakmakeup/booking_bot/internal/model"
)

const (
	imageWidth      = 1120
	imageHeight     = 760
	headerHeight    = 70
	leftLabelsWidth = 64
	dayPaddingX     = 6
	slotRadius      = 5.0
	totalDays       = 7
)

var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 255}
	hourLineColor  = color.RGBA{205, 208, 212, 255}
	evenDayColor   = color.RGBA{240, 240, 240, 255}
	oddDayColor    = color.RGBA{228, 229, 232, 255}
	confirmedColor = color.RGBA{255, 182, 193, 255}
	cancelledColor = color.RGBA{190, 190, 190, 255}
	slotTextColor  = color.RGBA{60, 24, 30, 255}
)

// RenderWeek draws the bookings for the seven days starting at weekStart and
// returns the encoded PNG. The visible hour range follows the working hours.
func RenderWeek(bookings []model.BookingRecord, weekStart time.Time, hours model.WorkingHours) ([]byte, error) {
	startHour := hourOf(hours.Open)
	endHour := hourOf(hours.Close)
	if endHour <= startHour {
		startHour, endHour = 0, 24
	}
	hourSpan := endHour - startHour

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()

	gridW := float64(imageWidth - leftLabelsWidth)
	gridH := float64(imageHeight - headerHeight)
	dayW := gridW / totalDays
	hourH := gridH / float64(hourSpan)

	// Day columns and headers.
	for day := 0; day < totalDays; day++ {
		x := float64(leftLabelsWidth) + float64(day)*dayW
		if day%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayW, gridH)
		dc.Fill()

		d := weekStart.AddDate(0, 0, day)
		label := fmt.Sprintf("%s %s", formatting.WeekdayShort(int(d.Weekday())), d.Format("01-02"))
		dc.SetColor(textColor)
		dc.DrawStringAnchored(label, x+dayW/2, headerHeight/2, 0.5, 0.5)
	}

	// Hour lines and labels.
	for h := 0; h <= hourSpan; h++ {
		y := float64(headerHeight) + float64(h)*hourH
		dc.SetColor(hourLineColor)
		dc.SetLineWidth(1)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()

		if h < hourSpan {
			dc.SetColor(textColor)
			dc.DrawStringAnchored(fmt.Sprintf("%02d:00", startHour+h), leftLabelsWidth/2, y+hourH/2, 0.5, 0.5)
		}
	}

	// Booked slots.
	byDate := make(map[string]int, totalDays)
	for day := 0; day < totalDays; day++ {
		byDate[weekStart.AddDate(0, 0, day).Format("2006-01-02")] = day
	}

	for _, b := range bookings {
		day, ok := byDate[b.DateISO]
		if !ok {
			continue
		}

		startMin := minutesOf(b.StartTime) - startHour*60
		endMin := minutesOf(b.EndTime) - startHour*60
		if endMin <= 0 || startMin >= hourSpan*60 {
			continue
		}
		if startMin < 0 {
			startMin = 0
		}
		if endMin > hourSpan*60 {
			endMin = hourSpan * 60
		}

		x := float64(leftLabelsWidth) + float64(day)*dayW + dayPaddingX
		y := float64(headerHeight) + float64(startMin)/60*hourH
		h := float64(endMin-startMin) / 60 * hourH

		if b.Status == model.BookingStatusCancelled {
			dc.SetColor(cancelledColor)
		} else {
			dc.SetColor(confirmedColor)
		}
		dc.DrawRoundedRectangle(x, y+1, dayW-2*dayPaddingX, h-2, slotRadius)
		dc.Fill()

		dc.SetColor(slotTextColor)
		label := fmt.Sprintf("%s %s", formatting.FormatTimeRange(b.StartTime, b.EndTime), b.ServiceName)
		dc.DrawStringAnchored(label, x+(dayW-2*dayPaddingX)/2, y+h/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode schedule image: %w", err)
	}
	return buf.Bytes(), nil
}

func hourOf(hhmm string) int {
	h, _ := strconv.Atoi(strings.SplitN(hhmm, ":", 2)[0])
	return h
}

func minutesOf(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) == 2 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}
