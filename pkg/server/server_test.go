package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alder-ui/alder/pkg/dom"
	"github.com/alder-ui/alder/pkg/protocol"
	"github.com/alder-ui/alder/pkg/runtime"
	"github.com/alder-ui/alder/pkg/vdom"
)

// tickerMount mounts a one-button counter used by the transport tests.
func tickerMount(reg *runtime.Registry, doc dom.Document) error {
	view := func(count int) *vdom.Html[int] {
		return vdom.Div(nil,
			vdom.Span(nil, vdom.Textf[int]("%d", count)),
			vdom.Button([]vdom.Attribute[int]{vdom.OnClick(1)}, vdom.Text[int]("tick")),
		)
	}
	update := func(count, delta int) int { return count + delta }
	_, err := runtime.Mount(reg, doc, "app", view, update, 0)
	return err
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(&Config{MetricsRegistry: prometheus.NewRegistry()}, tickerMount)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsNilMount(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatal("New accepted a nil mount function")
	}
}

func TestShellPage(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `id="app"`) {
		t.Fatalf("shell page missing mount container: %s", body)
	}
	if !strings.Contains(string(body), "/client.js") {
		t.Fatal("shell page does not load the thin client")
	}
}

func TestClientScriptServed(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/client.js")
	if err != nil {
		t.Fatalf("GET /client.js: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Fatalf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		t.Fatal("empty client script")
	}
}

func TestHealthz(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "alder_server_sessions_total") {
		t.Fatalf("metrics output missing session counter: %s", body)
	}
}

func dialLive(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	return conn
}

func writeFrame(t *testing.T, conn *websocket.Conn, f *protocol.Frame) {
	t.Helper()
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("encode frame: %v", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		t.Fatalf("write frame: %v", err)
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) *protocol.Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	frame, err := protocol.DecodeFrame(data)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return frame
}

func TestLiveSessionHandshakeAndDispatch(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	conn := dialLive(t, ts)
	defer conn.Close()

	hello := readFrame(t, conn)
	if hello.Type != protocol.FrameHello {
		t.Fatalf("first frame = %v, want Hello", hello.Type)
	}
	h, err := protocol.DecodeHello(hello.Payload)
	if err != nil {
		t.Fatalf("decode hello: %v", err)
	}
	if h.Version != protocol.Version || h.Container != "app" {
		t.Fatalf("hello = %+v", h)
	}

	initial := readFrame(t, conn)
	if initial.Type != protocol.FrameOps {
		t.Fatalf("second frame = %v, want Ops", initial.Type)
	}
	ops, err := protocol.DecodeOps(initial.Payload)
	if err != nil {
		t.Fatalf("decode ops: %v", err)
	}

	// The initial batch must anchor the container and carry exactly one
	// click binding for the button.
	var mountSeen bool
	var bindOp *protocol.Op
	for i := range ops {
		switch ops[i].Code {
		case protocol.OpMount:
			mountSeen = true
		case protocol.OpBind:
			if bindOp != nil {
				t.Fatal("more than one binding in initial ops")
			}
			bindOp = &ops[i]
		}
	}
	if !mountSeen {
		t.Fatal("initial ops missing Mount")
	}
	if bindOp == nil {
		t.Fatal("initial ops missing Bind")
	}
	if bindOp.Name != "onclick" {
		t.Fatalf("binding event = %q, want onclick", bindOp.Name)
	}

	// Click the button. The count text changes from 0 to 1, so the
	// patch batch must create the new text node and replace the old.
	ev := protocol.EncodeEvent(&protocol.Event{Seq: 1, Sym: bindOp.Sym, Ref: bindOp.Ref, Name: "onclick"})
	writeFrame(t, conn, protocol.NewFrame(protocol.FrameEvent, ev))

	patch := readFrame(t, conn)
	if patch.Type != protocol.FrameOps {
		t.Fatalf("patch frame = %v, want Ops", patch.Type)
	}
	patchOps, err := protocol.DecodeOps(patch.Payload)
	if err != nil {
		t.Fatalf("decode patch ops: %v", err)
	}

	var created, replaced bool
	for _, op := range patchOps {
		if op.Code == protocol.OpCreateText && op.Value == "1" {
			created = true
		}
		if op.Code == protocol.OpReplace {
			replaced = true
		}
	}
	if !created || !replaced {
		t.Fatalf("patch ops = %+v, want CreateText(\"1\") and Replace", patchOps)
	}
}

func TestLiveSessionChunksLargeOpsBatch(t *testing.T) {
	// An initial render bigger than one frame's payload must arrive
	// split across several Ops frames with every op intact.
	big := strings.Repeat("x", 20_000)
	mount := func(reg *runtime.Registry, doc dom.Document) error {
		view := func(int) *vdom.Html[int] {
			items := make([]*vdom.Html[int], 10)
			for i := range items {
				items[i] = vdom.Li[int](nil, vdom.Text[int](big))
			}
			return vdom.Ul[int](nil, items...)
		}
		update := func(m, _ int) int { return m }
		_, err := runtime.Mount(reg, doc, "app", view, update, 0)
		return err
	}

	s, err := New(&Config{MetricsRegistry: prometheus.NewRegistry()}, mount)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dialLive(t, ts)
	defer conn.Close()

	if f := readFrame(t, conn); f.Type != protocol.FrameHello {
		t.Fatalf("first frame = %v, want Hello", f.Type)
	}

	var texts []string
	frames := 0
	for len(texts) < 10 {
		f := readFrame(t, conn)
		if f.Type != protocol.FrameOps {
			t.Fatalf("frame %d = %v, want Ops", frames, f.Type)
		}
		ops, err := protocol.DecodeOps(f.Payload)
		if err != nil {
			t.Fatalf("decode ops frame %d: %v", frames, err)
		}
		for _, op := range ops {
			if op.Code == protocol.OpCreateText {
				texts = append(texts, op.Value)
			}
		}
		frames++
	}

	if frames < 2 {
		t.Errorf("batch arrived in %d frame, expected a split", frames)
	}
	for i, v := range texts {
		if v != big {
			t.Fatalf("text %d arrived corrupted: %d bytes, want %d", i, len(v), len(big))
		}
	}
}

func TestLiveSessionPingPong(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	conn := dialLive(t, ts)
	defer conn.Close()

	readFrame(t, conn) // hello
	readFrame(t, conn) // initial ops

	writeFrame(t, conn, protocol.NewFrame(protocol.FramePing, []byte{0xAB}))
	pong := readFrame(t, conn)
	if pong.Type != protocol.FramePong {
		t.Fatalf("reply = %v, want Pong", pong.Type)
	}
	if len(pong.Payload) != 1 || pong.Payload[0] != 0xAB {
		t.Fatalf("pong payload = %x", pong.Payload)
	}
}

func TestLiveSessionIgnoresBadFrames(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	conn := dialLive(t, ts)
	defer conn.Close()

	readFrame(t, conn) // hello
	readFrame(t, conn) // initial ops

	// Garbage, then a valid ping. The session must survive the garbage.
	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0xFF}); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	writeFrame(t, conn, protocol.NewFrame(protocol.FramePing, nil))
	if pong := readFrame(t, conn); pong.Type != protocol.FramePong {
		t.Fatalf("reply = %v, want Pong", pong.Type)
	}
}
