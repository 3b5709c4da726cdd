package eviction

import "container/list"

// freqBucket groups the keys that currently share one frequency. Keys are
// kept in promotion order: the front is the key that reached this frequency
// longest ago, which is the tie-break victim.
type freqBucket[K comparable] struct {
	freq uint64
	keys *list.List
}

// freqEntry locates a key inside the chain: the bucket element it lives in
// and its node within that bucket's key list.
type freqEntry[K comparable] struct {
	bucket *list.Element // value is *freqBucket[K]
	key    *list.Element // value is K
}

// freqChain is the shared core of LFU and MFU: a doubly linked chain of
// frequency buckets in strictly ascending frequency order. Promoting a key
// from frequency f to f+1 touches at most two adjacent buckets, so every
// operation is O(1). Empty buckets are unlinked immediately, keeping the
// chain front at the lowest live frequency and the back at the highest.
type freqChain[K comparable] struct {
	chain *list.List
	index map[K]*freqEntry[K]
}

func newFreqChain[K comparable]() freqChain[K] {
	return freqChain[K]{
		chain: list.New(),
		index: make(map[K]*freqEntry[K]),
	}
}

// insert registers k at frequency 1.
func (c *freqChain[K]) insert(k K) {
	front := c.chain.Front()
	var bucketEl *list.Element
	if front != nil && front.Value.(*freqBucket[K]).freq == 1 {
		bucketEl = front
	} else {
		bucketEl = c.chain.PushFront(&freqBucket[K]{freq: 1, keys: list.New()})
	}
	b := bucketEl.Value.(*freqBucket[K])
	c.index[k] = &freqEntry[K]{bucket: bucketEl, key: b.keys.PushBack(k)}
}

// promote moves k from its bucket at frequency f to the bucket at f+1,
// creating the target bucket if the chain skips that frequency.
func (c *freqChain[K]) promote(k K) {
	e, ok := c.index[k]
	if !ok {
		return
	}
	b := e.bucket.Value.(*freqBucket[K])
	next := e.bucket.Next()

	var targetEl *list.Element
	if next != nil && next.Value.(*freqBucket[K]).freq == b.freq+1 {
		targetEl = next
	} else {
		targetEl = c.chain.InsertAfter(&freqBucket[K]{freq: b.freq + 1, keys: list.New()}, e.bucket)
	}

	b.keys.Remove(e.key)
	if b.keys.Len() == 0 {
		c.chain.Remove(e.bucket)
	}

	target := targetEl.Value.(*freqBucket[K])
	e.bucket = targetEl
	e.key = target.keys.PushBack(k)
}

// remove drops k and unlinks its bucket if that empties it.
func (c *freqChain[K]) remove(k K) {
	e, ok := c.index[k]
	if !ok {
		return
	}
	b := e.bucket.Value.(*freqBucket[K])
	b.keys.Remove(e.key)
	if b.keys.Len() == 0 {
		c.chain.Remove(e.bucket)
	}
	delete(c.index, k)
}

// coldest returns the tie-break victim of the lowest-frequency bucket.
func (c *freqChain[K]) coldest() (K, bool) {
	front := c.chain.Front()
	if front == nil {
		var zero K
		return zero, false
	}
	return front.Value.(*freqBucket[K]).keys.Front().Value.(K), true
}

// hottest returns the tie-break victim of the highest-frequency bucket.
func (c *freqChain[K]) hottest() (K, bool) {
	back := c.chain.Back()
	if back == nil {
		var zero K
		return zero, false
	}
	return back.Value.(*freqBucket[K]).keys.Front().Value.(K), true
}

// frequency reports k's current counter.
func (c *freqChain[K]) frequency(k K) (uint64, bool) {
	e, ok := c.index[k]
	if !ok {
		return 0, false
	}
	return e.bucket.Value.(*freqBucket[K]).freq, true
}

func (c *freqChain[K]) len() int { return len(c.index) }

func (c *freqChain[K]) clear() {
	c.chain.Init()
	clear(c.index)
}
