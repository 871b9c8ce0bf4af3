package notebook

import (
	"errors"
	"slices"
	"testing"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/models"
	"github.com/julianstephens/daynotes/internal/storage"
)

func TestCommitReminderOnTwoDates(t *testing.T) {
	store := newMemStore()
	d := &fakeDialog{}
	c := newController(t, store, d, at(10, 0))

	c.SetReminderText("  water plants  ")
	for _, day := range []string{"2026-10-18", "2026-10-25"} {
		if err := c.ToggleDateSelection(day); err != nil {
			t.Fatalf("ToggleDateSelection(%s) error = %v", day, err)
		}
	}
	if v := c.View(); !slices.Equal(v.PendingDates, []string{"2026-10-18", "2026-10-25"}) {
		t.Errorf("PendingDates = %v", v.PendingDates)
	}

	if err := c.CommitReminder(); err != nil {
		t.Fatalf("CommitReminder() error = %v", err)
	}

	want := models.ReminderStore{
		"2026-10-18": {"water plants"},
		"2026-10-25": {"water plants"},
	}
	for k, v := range want {
		if !slices.Equal(store.reminders[k], v) {
			t.Errorf("reminders[%s] = %v, want %v", k, store.reminders[k], v)
		}
	}
	if len(store.reminders) != 2 {
		t.Errorf("reminders = %v, want only two dates", store.reminders)
	}

	v := c.View()
	if v.PendingActive || len(v.PendingDates) != 0 || v.PendingText != "" {
		t.Errorf("pending not cleared: %+v", v)
	}
	if d.alerts[len(d.alerts)-1] != constants.MsgReminderSet {
		t.Errorf("alerts = %v, want success last", d.alerts)
	}
}

func TestToggleRejectsNonFutureDates(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "yesterday", date: "2026-10-15"},
		{name: "today", date: "2026-10-16"},
		{name: "long ago", date: "2020-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDialog{}
			c := newController(t, newMemStore(), d, at(10, 0))
			c.SetReminderText("x")

			err := c.ToggleDateSelection(tt.date)
			if !errors.Is(err, ErrDateNotInFuture) || !IsValidation(err) {
				t.Errorf("error = %v, want ErrDateNotInFuture", err)
			}
			if len(c.View().PendingDates) != 0 {
				t.Error("rejected date was selected")
			}
			if !slices.Equal(d.alerts, []string{constants.MsgFutureOnly}) {
				t.Errorf("alerts = %v", d.alerts)
			}
		})
	}
}

func TestToggleUsesRealDateDuringNight(t *testing.T) {
	// At 01:00 the application day is still the 15th but the 16th has begun
	c := newController(t, newMemStore(), &fakeDialog{}, at(1, 0))
	c.SetReminderText("x")
	if err := c.ToggleDateSelection("2026-10-16"); !errors.Is(err, ErrDateNotInFuture) {
		t.Errorf("ToggleDateSelection(real today) error = %v", err)
	}
	if err := c.ToggleDateSelection("2026-10-17"); err != nil {
		t.Errorf("ToggleDateSelection(tomorrow) error = %v", err)
	}
}

func TestToggleRequiresPendingReminder(t *testing.T) {
	c := newController(t, newMemStore(), &fakeDialog{}, at(10, 0))
	if err := c.ToggleDateSelection("2026-10-20"); !errors.Is(err, ErrNoPendingReminder) {
		t.Errorf("error = %v, want ErrNoPendingReminder", err)
	}

	c.SetReminderText("x")
	_ = c.ToggleDateSelection("2026-10-20")
	c.SetReminderText("")
	// A selected date keeps the reminder active, so it can be deselected
	if err := c.ToggleDateSelection("2026-10-20"); err != nil {
		t.Errorf("deselect error = %v", err)
	}
	if c.View().PendingActive {
		t.Error("reminder still active with no text and no dates")
	}
}

func TestClickDayRouting(t *testing.T) {
	c := newController(t, newMemStore(), &fakeDialog{}, at(10, 0))

	if err := c.ClickDay("2026-10-20"); err != nil {
		t.Fatalf("ClickDay() error = %v", err)
	}
	if v := c.View(); v.ViewDate != "2026-10-20" || len(v.PendingDates) != 0 {
		t.Errorf("plain click: view %q pending %v", v.ViewDate, v.PendingDates)
	}

	c.SetReminderText("gym")
	if err := c.ClickDay("2026-10-22"); err != nil {
		t.Fatalf("ClickDay() error = %v", err)
	}
	v := c.View()
	if v.ViewDate != "2026-10-20" || !slices.Equal(v.PendingDates, []string{"2026-10-22"}) {
		t.Errorf("pending click: view %q pending %v", v.ViewDate, v.PendingDates)
	}

	var pendingCells int
	for _, week := range v.Weeks {
		for _, cell := range week {
			if cell.IsPending {
				pendingCells++
			}
		}
	}
	if pendingCells != 1 {
		t.Errorf("pending cells = %d, want 1", pendingCells)
	}

	c.ClearPending()
	if c.View().PendingActive {
		t.Error("ClearPending() left the reminder active")
	}
}

func TestCommitReminderValidation(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		dates     []string
		wantErr   error
		wantAlert string
	}{
		{name: "empty text", text: "   ", dates: []string{"2026-10-20"}, wantErr: ErrEmptyReminderText, wantAlert: constants.MsgReminderTextNeeded},
		{name: "no dates", text: "x", wantErr: ErrNoReminderDates, wantAlert: constants.MsgReminderDateNeeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			d := &fakeDialog{}
			c := newController(t, store, d, at(10, 0))
			c.SetReminderText("seed")
			for _, day := range tt.dates {
				_ = c.ToggleDateSelection(day)
			}
			c.SetReminderText(tt.text)

			err := c.CommitReminder()
			if !errors.Is(err, tt.wantErr) || !IsValidation(err) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !slices.Equal(d.alerts, []string{tt.wantAlert}) {
				t.Errorf("alerts = %v, want %q", d.alerts, tt.wantAlert)
			}
			if store.saves != 0 || len(store.reminders) != 0 {
				t.Errorf("store changed: %v", store.reminders)
			}
		})
	}
}

func TestCommitRechecksDates(t *testing.T) {
	clk := at(23, 0)
	store := newMemStore()
	d := &fakeDialog{}
	c := newController(t, store, d, clk)
	c.SetReminderText("x")
	if err := c.ToggleDateSelection("2026-10-17"); err != nil {
		t.Fatalf("ToggleDateSelection() error = %v", err)
	}

	// Two days later the chosen date is no longer in the future
	clk.t = clk.t.AddDate(0, 0, 2)
	if err := c.CommitReminder(); !errors.Is(err, ErrDateNotInFuture) {
		t.Errorf("CommitReminder() error = %v, want ErrDateNotInFuture", err)
	}
	if len(store.reminders) != 0 {
		t.Errorf("reminders stored: %v", store.reminders)
	}
}

func TestDeleteReminder(t *testing.T) {
	store := newMemStore()
	store.reminders = models.ReminderStore{"2026-10-20": {"a", "b"}}
	d := &fakeDialog{answer: true}
	c := newController(t, store, d, at(10, 0))

	if err := c.DeleteReminder("2026-10-20", 5); err != nil || len(d.confirms) != 0 {
		t.Errorf("out-of-range delete: err %v, confirms %v", err, d.confirms)
	}

	_ = c.DeleteReminder("2026-10-20", 0)
	if !slices.Equal(store.reminders["2026-10-20"], []string{"b"}) {
		t.Errorf("after first delete = %v", store.reminders)
	}

	_ = c.DeleteReminder("2026-10-20", 0)
	if _, ok := store.reminders["2026-10-20"]; ok {
		t.Errorf("empty list kept: %v", store.reminders)
	}
	if c.Session().Reminders.Has("2026-10-20") {
		t.Error("session kept the emptied date")
	}
}

func TestDeleteReminderDeclined(t *testing.T) {
	store := newMemStore()
	store.reminders = models.ReminderStore{"2026-10-20": {"a"}}
	c := newController(t, store, &fakeDialog{answer: false}, at(10, 0))
	_ = c.DeleteReminder("2026-10-20", 0)
	if !store.reminders.Has("2026-10-20") {
		t.Error("declined delete removed the reminder")
	}
}

func TestCommitReminderPersistenceFailure(t *testing.T) {
	store := newMemStore()
	d := &fakeDialog{}
	c := newController(t, store, d, at(10, 0))
	c.SetReminderText("x")
	_ = c.ToggleDateSelection("2026-10-20")
	store.fail = true

	err := c.CommitReminder()
	if !errors.Is(err, storage.ErrPersistence) {
		t.Fatalf("CommitReminder() error = %v, want ErrPersistence", err)
	}
	if slices.Contains(d.alerts, constants.MsgReminderSet) {
		t.Error("success shown although the save failed")
	}
	if !c.Session().Reminders.Has("2026-10-20") || !c.Unsaved() {
		t.Error("reminder not kept in memory")
	}

	store.fail = false
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if !store.reminders.Has("2026-10-20") {
		t.Error("Flush() did not write the reminder")
	}
}
