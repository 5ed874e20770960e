// Package serve implements the NDJSON request/response protocol over a pair
// of streams, typically stdin and stdout.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swaramap/swaramap/pkg/catalog"
	"github.com/swaramap/swaramap/pkg/search"
	"github.com/swaramap/swaramap/pkg/types"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server answers catalog requests, one JSON object per line.
type Server struct {
	core    *catalog.Core
	encoder *json.Encoder
	decoder *json.Decoder
	logger  *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. It must not write to the server's output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new streaming server
func NewServer(core *catalog.Core, in io.Reader, out io.Writer, opts ...Option) *Server {
	s := &Server{
		core:    core,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the server main loop. It returns nil on EOF or a close
// request, and the context error on cancellation.
func (s *Server) Run(ctx context.Context) error {
	s.sendReady()

	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					if err == io.EOF {
						return nil
					}
					s.sendError("", "decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	s.logger.Debug("request", zap.String("id", req.ID), zap.String("type", req.Type))

	var (
		data any
		err  error
	)
	switch req.Type {
	case "match":
		data, err = s.handleMatch(req.Payload)
	case "regions":
		data, err = s.handleRegions(req.Payload)
	case "region":
		data, err = s.handleRegion(req.Payload)
	case "search":
		data, err = s.handleSearch(req.Payload)
	case "close":
		return true
	default:
		err = fmt.Errorf("unknown request type: %s", req.Type)
	}

	if err != nil {
		s.sendError(req.ID, req.Type, err.Error())
		return false
	}
	s.send(req.ID, req.Type, data)
	return false
}

// decodePayload unmarshals payload into v. An absent payload leaves v zero.
func decodePayload(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

func (s *Server) handleMatch(payload json.RawMessage) (any, error) {
	var p MatchPayload
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}

	q := types.MatchQuery{InstrumentQuery: p.InstrumentQuery, RhythmFilter: p.RhythmFilter}
	out := MatchData{MatchOutcome: s.core.Match(q)}
	if p.Explain {
		out.Explanations = s.core.Explain(q)
	}
	return out, nil
}

func (s *Server) handleRegions(payload json.RawMessage) (any, error) {
	var p RegionsPayload
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	return s.core.Emphasis(types.MatchQuery{
		InstrumentQuery: p.InstrumentQuery,
		RhythmFilter:    p.RhythmFilter,
	}), nil
}

func (s *Server) handleRegion(payload json.RawMessage) (any, error) {
	var p RegionPayload
	if err := decodePayload(payload, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("region id is required")
	}
	return s.core.Region(p.ID)
}

func (s *Server) handleSearch(payload json.RawMessage) (any, error) {
	var f search.Filters
	if err := decodePayload(payload, &f); err != nil {
		return nil, err
	}
	return s.core.Search(f), nil
}

func (s *Server) sendReady() {
	tokens := s.core.Matcher().Tokens()
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Name
	}
	s.send("", "ready", ReadyData{
		Version: Version,
		Regions: len(s.core.Regions()),
		Tokens:  names,
	})
}

func (s *Server) send(id, reqType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendError(id, reqType, err.Error())
		return
	}
	s.write(Response{ID: id, Success: true, Type: reqType, Data: data})
}

func (s *Server) sendError(id, reqType, msg string) {
	s.logger.Debug("request failed",
		zap.String("id", id),
		zap.String("type", reqType),
		zap.String("error", msg))
	s.write(Response{ID: id, Success: false, Type: reqType, Error: msg})
}

func (s *Server) write(resp Response) {
	if err := s.encoder.Encode(resp); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}
