// Implements the ReadyQueue, which holds all admitted processes waiting for the CPU.
// Processes are enqueued on arrival (and, under Round Robin, again after each time slice).

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of admitted, unfinished processes.
// Membership is tracked by Process.Index so a process can never be queued twice.
type ReadyQueue struct {
	queue   []*Process   // FIFO queue of processes
	members map[int]bool // indices of queued processes
}

// NewReadyQueue returns an empty ReadyQueue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{members: make(map[int]bool)}
}

// Enqueue adds a process to the back of the ready queue.
// Panics if the process is already queued.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	if rq.members[p.Index] {
		panic(fmt.Sprintf("Enqueue: process %q is already queued", p.Name))
	}
	rq.queue = append(rq.queue, p)
	rq.members[p.Index] = true
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(p.Name)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Contains reports whether p is currently queued.
func (rq *ReadyQueue) Contains(p *Process) bool {
	return rq.members[p.Index]
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue = rq.queue[1:]
	delete(rq.members, p.Index)
	return p
}

// Remove deletes p from the queue, preserving the order of the others.
// Returns false if p was not queued.
func (rq *ReadyQueue) Remove(p *Process) bool {
	if !rq.members[p.Index] {
		return false
	}
	for i, q := range rq.queue {
		if q.Index == p.Index {
			rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
			break
		}
	}
	delete(rq.members, p.Index)
	return true
}
