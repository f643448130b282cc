/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package registry

import (
	"container/list"
	"sync"
)

// New returns an empty Registry carrying handles of type T.
func New[T any]() Registry[T] {
	return &registry[T]{
		entries: list.New(),
		index:   make(map[ID]*list.Element),
	}
}

type entry[T any] struct {
	id        ID
	handle    T
	completed bool
}

type registry[T any] struct {
	mu      sync.Mutex
	entries *list.List
	index   map[ID]*list.Element

	nextID    ID
	accepted  uint64
	completed uint64
}

func (r *registry[T]) Insert(handle T) ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.accepted++

	el := r.entries.PushBack(&entry[T]{id: id, handle: handle})
	r.index[id] = el

	return id
}

func (r *registry[T]) MarkCompleted(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.index[id]
	if !ok {
		return
	}

	e := el.Value.(*entry[T])
	if !e.completed {
		e.completed = true
		r.completed++
	}
}

func (r *registry[T]) ReapCompleted() []Entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	var done []Entry[T]

	for el := r.entries.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*entry[T])

		if e.completed {
			done = append(done, Entry[T]{ID: e.id, Handle: e.handle})
			delete(r.index, e.id)
			r.entries.Remove(el)
		}

		el = next
	}

	return done
}

func (r *registry[T]) Snapshot() []Entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry[T], 0, r.entries.Len())
	for el := r.entries.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[T])
		out = append(out, Entry[T]{ID: e.id, Handle: e.handle})
	}

	return out
}

func (r *registry[T]) RemoveFront() (Entry[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el := r.entries.Front()
	if el == nil {
		return Entry[T]{}, false
	}

	e := el.Value.(*entry[T])
	delete(r.index, e.id)
	r.entries.Remove(el)

	return Entry[T]{ID: e.id, Handle: e.handle}, true
}

func (r *registry[T]) Remove(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, ok := r.index[id]
	if !ok {
		return
	}

	delete(r.index, id)
	r.entries.Remove(el)
}

func (r *registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.entries.Len()
}

func (r *registry[T]) Counters() Counters {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Counters{
		Accepted:  r.accepted,
		Active:    r.entries.Len(),
		Completed: r.completed,
	}
}
