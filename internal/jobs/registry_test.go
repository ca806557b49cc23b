package jobs_test

import (
	"errors"
	"testing"

	"github.com/ahsanp/tiny-shell/internal/jobs"
)

func addTestJob(
	t *testing.T,
	r *jobs.Registry,
	pid int,
	state jobs.State,
	cmdline string,
) int {
	t.Helper()

	id, err := r.Add(pid, state, cmdline)
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	return id
}

func TestRegistryAddAndLookup(t *testing.T) {
	r := jobs.NewRegistry()
	r.Gate().Lock()
	defer r.Gate().Unlock()

	id := addTestJob(t, r, 101, jobs.StateBackground, "sleep 5 &")

	if id != 1 {
		t.Errorf("expected first job id: got '%d', want '1'", id)
	}

	t.Run("Test lookup by pid", func(t *testing.T) {
		job, ok := r.ByPID(101)
		if !ok {
			t.Fatalf("expected to find job by pid 101")
		}

		if job.ID != id || job.State != jobs.StateBackground ||
			job.Cmdline != "sleep 5 &" {
			t.Errorf("unexpected job: got '%+v'", job)
		}
	})

	t.Run("Test lookup by id", func(t *testing.T) {
		job, ok := r.ByID(id)
		if !ok {
			t.Fatalf("expected to find job by id %d", id)
		}

		if job.PID != 101 {
			t.Errorf("expected pid: got '%d', want '101'", job.PID)
		}
	})

	t.Run("Test lookup of unknown references", func(t *testing.T) {
		if _, ok := r.ByPID(999); ok {
			t.Errorf("expected not to find job by pid 999")
		}

		if _, ok := r.ByID(7); ok {
			t.Errorf("expected not to find job by id 7")
		}

		if _, ok := r.ByPID(0); ok {
			t.Errorf("expected not to find job by pid 0")
		}
	})
}

func TestRegistryForeground(t *testing.T) {
	r := jobs.NewRegistry()
	r.Gate().Lock()
	defer r.Gate().Unlock()

	if _, ok := r.Foreground(); ok {
		t.Errorf("expected no foreground job in empty registry")
	}

	addTestJob(t, r, 201, jobs.StateForeground, "sleep 5")

	pid, ok := r.Foreground()
	if !ok || pid != 201 {
		t.Errorf("expected foreground pid: got '%d', want '201'", pid)
	}

	t.Run("Test second foreground job is rejected", func(t *testing.T) {
		if _, err := r.Add(202, jobs.StateForeground, "sleep 6"); !errors.Is(
			err,
			jobs.ErrForegroundTaken,
		) {
			t.Errorf("expected ErrForegroundTaken: got '%v'", err)
		}
	})

	t.Run("Test foreground cleared on remove", func(t *testing.T) {
		if !r.Remove(201) {
			t.Fatalf("expected to remove pid 201")
		}

		if _, ok := r.Foreground(); ok {
			t.Errorf("expected no foreground job after remove")
		}
	})
}

func TestRegistryFull(t *testing.T) {
	r := jobs.NewRegistry()
	r.Gate().Lock()
	defer r.Gate().Unlock()

	for i := 0; i < jobs.MaxJobs; i++ {
		addTestJob(t, r, 1000+i, jobs.StateBackground, "sleep 60 &")
	}

	if _, err := r.Add(2000, jobs.StateBackground, "sleep 60 &"); !errors.Is(
		err,
		jobs.ErrTooManyJobs,
	) {
		t.Errorf("expected ErrTooManyJobs: got '%v'", err)
	}

	if got := len(r.List()); got != jobs.MaxJobs {
		t.Errorf("expected table unchanged: got '%d' jobs, want '%d'",
			got, jobs.MaxJobs)
	}

	if _, ok := r.ByPID(2000); ok {
		t.Errorf("expected rejected job not to be present")
	}
}

func TestRegistryIDAllocation(t *testing.T) {
	r := jobs.NewRegistry()
	r.Gate().Lock()
	defer r.Gate().Unlock()

	for i, wantID := range []int{1, 2, 3} {
		if id := addTestJob(t, r, 301+i, jobs.StateBackground, "sleep 60 &"); id != wantID {
			t.Errorf("expected job id: got '%d', want '%d'", id, wantID)
		}
	}

	t.Run("Test resync after removing highest id", func(t *testing.T) {
		r.Remove(303)

		if id := addTestJob(t, r, 304, jobs.StateBackground, "sleep 60 &"); id != 3 {
			t.Errorf("expected job id: got '%d', want '3'", id)
		}
	})

	t.Run("Test new ids never collide with live ids", func(t *testing.T) {
		r.Remove(301)

		id := addTestJob(t, r, 305, jobs.StateBackground, "sleep 60 &")

		for _, job := range r.List() {
			if job.PID != 305 && job.ID == id {
				t.Errorf("expected fresh id: got '%d', already held by pid '%d'",
					id, job.PID)
			}
		}
	})

	t.Run("Test ids restart from 1 on empty table", func(t *testing.T) {
		for _, job := range r.List() {
			r.Remove(job.PID)
		}

		if id := addTestJob(t, r, 306, jobs.StateBackground, "sleep 60 &"); id != 1 {
			t.Errorf("expected job id: got '%d', want '1'", id)
		}
	})
}

func TestRegistrySetState(t *testing.T) {
	tests := []struct {
		name    string
		from    jobs.State
		to      jobs.State
		wantErr bool
	}{
		{"foreground to stopped", jobs.StateForeground, jobs.StateStopped, false},
		{"background to stopped", jobs.StateBackground, jobs.StateStopped, false},
		{"background to foreground", jobs.StateBackground, jobs.StateForeground, false},
		{"stopped to foreground", jobs.StateStopped, jobs.StateForeground, false},
		{"stopped to background", jobs.StateStopped, jobs.StateBackground, false},
		{"background to background", jobs.StateBackground, jobs.StateBackground, false},
		{"foreground to background", jobs.StateForeground, jobs.StateBackground, true},
	}

	for _, tt := range tests {
		t.Run("Test "+tt.name, func(t *testing.T) {
			r := jobs.NewRegistry()
			r.Gate().Lock()
			defer r.Gate().Unlock()

			addTestJob(t, r, 401, tt.from, "sleep 60")

			err := r.SetState(401, tt.to)
			if tt.wantErr {
				if !errors.As(err, &jobs.InvalidTransitionError{}) {
					t.Fatalf("expected InvalidTransitionError: got '%v'", err)
				}

				job, _ := r.ByPID(401)
				if job.State != tt.from {
					t.Errorf("expected state unchanged: got '%s', want '%s'",
						job.State, tt.from)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected not to receive error: got '%v'", err)
			}

			job, _ := r.ByPID(401)
			if job.State != tt.to {
				t.Errorf("expected state: got '%s', want '%s'", job.State, tt.to)
			}
		})
	}

	t.Run("Test unknown pid", func(t *testing.T) {
		r := jobs.NewRegistry()
		r.Gate().Lock()
		defer r.Gate().Unlock()

		if err := r.SetState(999, jobs.StateStopped); !errors.Is(
			err,
			jobs.ErrNoSuchJob,
		) {
			t.Errorf("expected ErrNoSuchJob: got '%v'", err)
		}
	})
}

func TestRegistryListOrder(t *testing.T) {
	r := jobs.NewRegistry()
	r.Gate().Lock()
	defer r.Gate().Unlock()

	addTestJob(t, r, 501, jobs.StateBackground, "a &")
	addTestJob(t, r, 502, jobs.StateBackground, "b &")
	addTestJob(t, r, 503, jobs.StateBackground, "c &")

	r.Remove(502)
	addTestJob(t, r, 504, jobs.StateBackground, "d &")

	wantPIDs := []int{501, 504, 503}

	got := r.List()
	if len(got) != len(wantPIDs) {
		t.Fatalf("expected jobs: got '%d', want '%d'", len(got), len(wantPIDs))
	}

	for i, job := range got {
		if job.PID != wantPIDs[i] {
			t.Errorf(
				"expected pid at position %d: got '%d', want '%d'",
				i, job.PID, wantPIDs[i],
			)
		}
	}

	t.Run("Test repeated listing is identical", func(t *testing.T) {
		again := r.List()
		for i, job := range again {
			if job != got[i] {
				t.Errorf("expected identical snapshot: got '%+v', want '%+v'",
					job, got[i])
			}
		}
	})
}
