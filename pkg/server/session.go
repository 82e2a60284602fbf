package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/alder-ui/alder/pkg/dom/memdom"
	"github.com/alder-ui/alder/pkg/protocol"
	"github.com/alder-ui/alder/pkg/runtime"
)

// session is one live connection: its own document mirror, op
// recorder, dispatch registry, and mounted program. Everything runs on
// the connection's read goroutine; the engine's synchronous model maps
// directly onto one-frame-at-a-time processing.
type session struct {
	srv    *Server
	conn   *websocket.Conn
	mem    *memdom.Document
	doc    *sessionDocument
	reg    *runtime.Registry
	logger *slog.Logger
}

func (srv *Server) newSession(conn *websocket.Conn) *session {
	mem := memdom.New()
	return &session{
		srv:    srv,
		conn:   conn,
		mem:    mem,
		doc:    newSessionDocument(mem),
		reg:    runtime.NewRegistry(srv.logger),
		logger: srv.logger.With("remote", conn.RemoteAddr().String()),
	}
}

// run owns the session from handshake to disconnect.
func (s *session) run(ctx context.Context) {
	defer s.conn.Close()

	m := s.srv.metrics
	m.sessionsTotal.Inc()
	m.activeSessions.Inc()
	defer m.activeSessions.Dec()

	// Mirror the shell page's mount container, and tell the client
	// which ref anchors it.
	container := s.mem.CreateElement("div")
	s.mem.SetAttribute(container, "id", s.srv.cfg.Container)
	s.mem.AppendChild(s.mem.Body(), container)
	s.doc.recordMount(container, s.srv.cfg.Container)
	s.mem.SetDispatcher(s.reg)

	if err := s.srv.mount(s.reg, s.doc); err != nil {
		s.logger.Error("application mount failed", "error", err)
		s.writeFrame(protocol.NewFrame(protocol.FrameError, []byte(err.Error())))
		return
	}

	hello := protocol.EncodeHello(&protocol.Hello{
		Version:   protocol.Version,
		Container: s.srv.cfg.Container,
	})
	if err := s.writeFrame(protocol.NewFrame(protocol.FrameHello, hello)); err != nil {
		return
	}
	if err := s.flushOps(); err != nil {
		return
	}

	s.logger.Debug("session started")

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.logger.Debug("session closed", "error", err)
			return
		}

		frame, err := protocol.DecodeFrame(data)
		if err != nil {
			m.frameErrors.Inc()
			s.logger.Warn("undecodable frame", "error", err)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEvent(ctx, frame.Payload)
		case protocol.FramePing:
			s.writeFrame(protocol.NewFrame(protocol.FramePong, frame.Payload))
		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type.String())
		}
	}
}

// handleEvent runs one full dispatch cycle for a client event and
// flushes the resulting ops.
func (s *session) handleEvent(ctx context.Context, payload []byte) {
	m := s.srv.metrics

	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		m.frameErrors.Inc()
		s.logger.Warn("undecodable event", "error", err)
		return
	}

	node, ok := s.mem.NodeByID(ev.Ref)
	if !ok {
		m.eventErrors.Inc()
		s.logger.Warn("event for unknown node", "ref", ev.Ref)
		return
	}

	_, span := s.srv.tracer.Start(ctx, "dispatch", trace.WithAttributes(
		attribute.String("event.name", ev.Name),
		attribute.Int64("event.symbol", int64(ev.Sym)),
		attribute.Int64("event.node", int64(ev.Ref)),
	))
	defer span.End()

	start := time.Now()
	err = s.mem.FireEvent(node, ev.Name)
	m.dispatchSeconds.Observe(time.Since(start).Seconds())
	m.eventsTotal.Inc()

	if err != nil {
		m.eventErrors.Inc()
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("dispatch failed", "error", err, "event", ev.Name)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if err := s.flushOps(); err != nil {
		s.logger.Warn("flush failed", "error", err)
	}
}

// flushOps drains the recorded ops, split across as many frames as
// the payload limit requires. A single op too large for one frame
// (a pathological text node) ends the session rather than desync the
// client.
func (s *session) flushOps() error {
	ops := s.doc.Flush()
	total := len(ops)
	if total == 0 {
		return nil
	}

	for len(ops) > 0 {
		payload, rest, err := protocol.EncodeOpsBounded(ops, protocol.MaxPayloadSize)
		if err != nil {
			s.logger.Error("op does not fit in a frame", "error", err, "pending", len(ops))
			return err
		}
		if err := s.writeFrame(protocol.NewFrame(protocol.FrameOps, payload)); err != nil {
			return err
		}
		ops = rest
	}
	s.srv.metrics.opsSentTotal.Add(float64(total))
	return nil
}

func (s *session) writeFrame(f *protocol.Frame) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}
