package counter_test

import (
	"testing"
	"time"

	"github.com/delaneyj/bitflush/components/counter"
	"github.com/delaneyj/bitflush/dom"
	"github.com/delaneyj/bitflush/dom/memdom"
	"github.com/delaneyj/bitflush/eventloop"
	"github.com/delaneyj/bitflush/reactive"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flushLog struct {
	flushes []reactive.Mask
}

func (f *flushLog) Wrote(reactive.Mask, bool) {}

func (f *flushLog) Flushed(bits reactive.Mask, _ time.Time, _ time.Duration) {
	f.flushes = append(f.flushes, bits)
}

func assertHTML(t *testing.T, want string, doc *memdom.Document) {
	t.Helper()
	if diff := cmp.Diff(want, doc.HTML()); diff != "" {
		t.Errorf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestCounter(t *testing.T) {
	doc := memdom.New()
	loop := eventloop.New()
	log := &flushLog{}

	in, err := counter.Mount(doc, doc.Body(), loop, reactive.WithObserver(log))
	require.NoError(t, err)
	inc, step, reset := counter.Buttons(in)

	click := func(els ...dom.Element) {
		require.NoError(t, loop.Submit(func() {
			for _, el := range els {
				doc.Click(el)
			}
		}))
		loop.Drain()
	}

	assertHTML(t, `<div id="counter" class="counter"><p>0</p><span>0<i> total</i></span><button>+</button><button>step 1</button><button>reset</button></div>`, doc)
	root, ok := doc.GetElementByID("counter")
	require.True(t, ok, "the preserved identifier still resolves")
	assert.Equal(t, []string{"click"}, inc.(*memdom.Element).EventTypes())

	click(inc)
	assertHTML(t, `<div id="counter" class="counter"><p title="count is 1">1</p><span>1<i> total</i></span><button>+</button><button>step 1</button><button>reset</button></div>`, doc)

	countPrint := memdom.Fingerprint(counter.CountRef(in))
	click(step, step)
	assert.Equal(t, "step 3", counter.StepRef(in).(*memdom.Element).TextContent())
	assert.Equal(t, "3 total", counter.SummaryRef(in).(*memdom.Element).TextContent())
	assert.Equal(t, countPrint, memdom.Fingerprint(counter.CountRef(in)), "count is untouched by a step-only flush")

	click(inc)
	assert.Equal(t, "12 total", counter.SummaryRef(in).(*memdom.Element).TextContent())
	title, _ := counter.CountRef(in).GetAttribute("title")
	assert.Equal(t, "count is 4", title)

	click(reset)
	assertHTML(t, `<div id="counter" class="counter"><p>0</p><span>0<i> total</i></span><button>+</button><button>step 1</button><button>reset</button></div>`, doc)

	click(reset)
	assert.Equal(t, []reactive.Mask{0b01, 0b10, 0b01, 0b11}, log.flushes)
	assert.Same(t, root, counter.Root(in))
}
