package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/julianstephens/wellfit/internal/models"
)

func sampleWeek() *models.WeeklyData {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	water := models.NormalizeSeries(monday, []models.HabitEntry{{Day: "2025-06-04", Value: 6}})
	return &models.WeeklyData{
		WeekStart: "2025-06-02",
		Series:    map[models.HabitKind]models.WeeklySeries{models.HabitWater: water},
	}
}

func TestRenderWeek(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderWeek(&buf, sampleWeek(), models.DefaultGoals()); err != nil {
		t.Fatalf("RenderWeek() error = %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Water Intake", "Sleep Hours", "Workout", "2025-06-02", "Mon", "Sun"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestWeekBarUsesSevenDays(t *testing.T) {
	bar := WeekBar(sampleWeek(), models.HabitSleep, 7)
	if len(bar.MultiSeries) != 1 {
		t.Fatalf("expected one series, got %d", len(bar.MultiSeries))
	}
	data, ok := bar.MultiSeries[0].Data.([]opts.BarData)
	if !ok {
		t.Fatalf("unexpected series data type %T", bar.MultiSeries[0].Data)
	}
	if len(data) != 7 {
		t.Errorf("expected 7 bars, got %d", len(data))
	}
}

func TestWriteWeekFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.html")
	if err := WriteWeekFile(path, sampleWeek(), models.DefaultGoals()); err != nil {
		t.Fatalf("WriteWeekFile() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}
