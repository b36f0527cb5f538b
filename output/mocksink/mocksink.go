package mocksink

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/ejoffe/printkit/output"
)

type matcher string

func (str matcher) Match(s string) bool {
	return string(str) == s
}

type rematcher string

func (re rematcher) Match(s string) bool {
	matched, err := regexp.MatchString(string(re), s)
	if err != nil {
		panic(err.Error())
	}

	return matched
}

// Recorder is a sink spy for testing. It satisfies both the text and JSON
// capabilities so one spy serves either profile.
type Recorder struct {
	fragments []string
	expected  []output.Matcher
	lock      *sync.Mutex
}

func (r *Recorder) Accept(fragment string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.fragments = append(r.fragments, fragment)
}

func (r *Recorder) Text() {}

func (r *Recorder) JSON() {}

// Fragments returns a copy of the accepted fragments in order.
func (r *Recorder) Fragments() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return slices.Clone(r.fragments)
}

// String returns the concatenation of all accepted fragments.
func (r *Recorder) String() string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return strings.Join(r.fragments, "")
}

func (r *Recorder) Expect(m output.Matcher) *Recorder {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.expected = append(r.expected, m)

	return r
}

func (r *Recorder) ExpectString(str string) *Recorder {
	return r.Expect(matcher(str))
}

func (r *Recorder) ExpectRegExp(str string) *Recorder {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.expected = append(r.expected, rematcher(str))

	return r
}

func (r *Recorder) Purge() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.fragments = []string{}
	r.expected = []output.Matcher{}
}

func (r *Recorder) ExpectationsMet() {
	r.lock.Lock()
	defer r.lock.Unlock()

	if len(r.fragments) != len(r.expected) {
		r.fail(nil)
		return
	}
	for i := 0; i != len(r.fragments); i++ {
		if !r.expected[i].Match(r.fragments[i]) {
			r.fail(&i)
			return
		}
	}

	r.fragments = []string{}
	r.expected = []output.Matcher{}
}

func (r *Recorder) fail(index *int) {
	msg := "Expected:\n"
	for i := 0; i < len(r.expected); i++ {
		got := r.expected[i]
		if index != nil && *index == i {
			msg += fmt.Sprintf("-----> \"%s\"\n", got)
		} else {
			msg += fmt.Sprintf("\"%s\"\n", got)
		}
	}

	msg += "Got:\n"
	for i := 0; i < len(r.fragments); i++ {
		got := r.fragments[i]
		if index != nil && *index == i {
			msg += fmt.Sprintf("-----> \"%s\"\n", got)
		} else {
			msg += fmt.Sprintf("\"%s\"\n", got)
		}
	}

	msg += "instead\n"

	panic(msg)
}

func New() *Recorder {
	return &Recorder{
		fragments: []string{},
		lock:      &sync.Mutex{},
	}
}
