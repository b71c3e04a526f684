package schedule

import (
	"container/list"
	"time"
)

// queue keeps delayed tasks ordered by time and the rest in FIFO order
type queue struct {
	ordered *list.List
	timed   *list.List
}

func newQueue() queue {
	return queue{
		ordered: list.New(),
		timed:   list.New(),
	}
}

func (q queue) push(t *Task) {
	switch t.run {
	case runImmediately:
		q.ordered.PushFront(t)
	case runAfter:
		t.scheduledAt = time.Now().Add(t.delay)
		q.schedule(t)
	default:
		q.ordered.PushBack(t)
	}
}

func (q queue) pop(now time.Time) *Task {
	if cur := q.timed.Front(); cur != nil {
		t := cur.Value.(*Task)
		if !t.scheduledAt.After(now) {
			q.timed.Remove(cur)
			return t
		}
	}

	if cur := q.ordered.Front(); cur != nil {
		q.ordered.Remove(cur)
		return cur.Value.(*Task)
	}

	return nil
}

func (q queue) schedule(t *Task) {
	for cur := q.timed.Front(); cur != nil; cur = cur.Next() {
		if cur.Value.(*Task).scheduledAt.After(t.scheduledAt) {
			q.timed.InsertBefore(t, cur)
			return
		}
	}
	q.timed.PushBack(t)
}

func (q queue) removeGroup(group string) {
	for _, l := range []*list.List{q.ordered, q.timed} {
		for cur := l.Front(); cur != nil; {
			next := cur.Next()
			if cur.Value.(*Task).Group == group {
				l.Remove(cur)
			}
			cur = next
		}
	}
}

func (q queue) len() int {
	return q.ordered.Len() + q.timed.Len()
}
