package malformed

import "test/orm"

type Job struct {
	orm.Model
	Queue string
}

var tracker orm.Tracker

// The configured registration path has no owner segment, so no call can ever
// match and every construction is reported.
func track(queue string) {
	j := &Job{Queue: queue} // want `entity test/register/malformed.Job is used before being registered with register-now`
	tracker.Register(j)
}

func direct(queue string) {
	tracker.Register(&Job{Queue: queue}) // want `entity test/register/malformed.Job is constructed and escapes without being registered with register-now`
}
