package progress

import "testing"

func TestStateValid(t *testing.T) {
	valid := []State{
		StateInitializing,
		StateDownloading,
		StateProcessing,
		StateLayingOut,
		StateSavingDocument,
		StateDone,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected state %q to be valid", s)
		}
	}

	if State("Exploding").Valid() {
		t.Error("unknown state should not be valid")
	}
}

func TestNoopIsReporter(t *testing.T) {
	var r Reporter = Noop{}
	r.SetState(StateDownloading)
	r.TickDownload()
	r.TickProcess()
}
