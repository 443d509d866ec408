package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for a dictionary
type Server struct {
	dict   trie.Store
	config *config.Config
	dec    *msgpack.Decoder
	out    *bufio.Writer
	enc    *msgpack.Encoder
	log    *log.Logger
}

// NewServer creates a server reading stdin and writing stdout
func NewServer(dict trie.Store, cfg *config.Config) *Server {
	return NewServerWithIO(dict, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(dict trie.Store, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		dict:   dict,
		config: cfg,
		dec:    msgpack.NewDecoder(r),
		out:    out,
		enc:    msgpack.NewEncoder(out),
		log:    logger.New("server"),
	}
}

// Start serves requests until the input stream ends.
// A clean EOF returns nil; a frame that cannot be decoded ends the loop with an error.
func (s *Server) Start() error {
	s.log.Debug("Starting server")

	if err := s.send(StatusFrame{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client closed input")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			if sendErr := s.sendError("", "malformed request", 400); sendErr != nil {
				return sendErr
			}
			return fmt.Errorf("decoding request: %w", err)
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on op. Only write failures are returned.
func (s *Server) handleRequest(req Request) error {
	s.log.Debug("Request", "id", req.ID, "op", req.Op, "w", req.Word)

	switch req.Op {
	case OpInsert:
		return s.handleInsert(req)
	case OpRemove:
		if msg := s.checkWord(req.Word); msg != "" {
			return s.sendError(req.ID, msg, 400)
		}
		s.dict.Remove(req.Word)
		return s.sendOK(req.ID, s.dict.Count(trie.CountAll), false)
	case OpCount:
		return s.sendOK(req.ID, s.dict.Count(req.Word), false)
	case OpContains:
		return s.sendOK(req.ID, 0, s.dict.Contains(req.Word))
	case OpSearch:
		return s.handleSearch(req)
	case OpHealth:
		return s.sendOK(req.ID, 0, false)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleInsert(req Request) error {
	if msg := s.checkWord(req.Word); msg != "" {
		return s.sendError(req.ID, msg, 400)
	}
	if s.config.Server.EnableFilter && !utils.IsValidWord(req.Word) {
		s.log.Debugf("Filtered word %q", req.Word)
		return s.sendError(req.ID, fmt.Sprintf("word rejected by filter: %q", req.Word), 400)
	}
	s.dict.Insert(req.Word)
	return s.sendOK(req.ID, s.dict.Count(trie.CountAll), false)
}

// checkWord returns a client-facing message when word cannot be stored.
func (s *Server) checkWord(word string) string {
	if word == "" {
		return "missing 'w' parameter"
	}
	if maxLen := s.config.Server.MaxWordLen; maxLen > 0 && utils.RuneLen(word) > maxLen {
		return fmt.Sprintf("word exceeds maximum length of %d characters", maxLen)
	}
	return ""
}

func (s *Server) handleSearch(req Request) error {
	limit := req.Limit
	if limit < 1 {
		limit = s.config.Server.DefaultLimit
	}
	if maxLimit := s.config.Server.MaxLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	start := time.Now()
	words := s.dict.PrefixSearch(req.Word, limit)
	elapsed := time.Since(start)
	s.log.Debugf("Search %q limit=%d found=%d in %v", req.Word, limit, len(words), elapsed)

	return s.send(SearchResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) sendOK(id string, count int, found bool) error {
	return s.send(Response{ID: id, Status: "ok", Count: count, Found: found})
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// send encodes one frame and flushes it.
func (s *Server) send(v any) error {
	if err := s.enc.Encode(v); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
