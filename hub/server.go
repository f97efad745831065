// SPDX-License-Identifier: MIT

package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/BeBeatrice/Parallel-Computing/wavefront"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ShutdownTimeout bounds the graceful shutdown of Serve.
const ShutdownTimeout = 5 * time.Second

// Server holds the groups of a hub and serves them over HTTP.
// It is safe for concurrent use.
type Server struct {
	log    *slog.Logger
	router *gin.Engine

	mu     sync.Mutex
	groups map[string]*session
}

// session is the hub-side state of one group.
type session struct {
	id    string
	group *wavefront.LocalGroup

	inputs      Inputs
	inputsOnce  sync.Once
	inputsReady chan struct{}

	result      Report
	resultOnce  sync.Once
	resultReady chan struct{}
}

func newSession(id string, size int) (*session, error) {
	group, err := wavefront.NewLocalGroup(size)
	if err != nil {
		return nil, err
	}

	return &session{
		id:          id,
		group:       group,
		inputsReady: make(chan struct{}),
		resultReady: make(chan struct{}),
	}, nil
}

// NewServer returns a hub with no groups. A nil logger means slog.Default().
func NewServer(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{log: log, groups: make(map[string]*session)}
	s.router = gin.New()
	s.router.Use(gin.Recovery(), otelgin.Middleware("wavefront-hub"), s.requestLogger())
	s.routes()

	return s
}

// Handler returns the HTTP handler of the hub.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("hub: listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("hub: serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.abortAll("hub shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("hub: shutdown: %w", err)
	}
	s.log.Info("hub: stopped")

	return nil
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	{
		v1.POST("/groups", s.createGroup)
		groups := v1.Group("/groups/:id")
		{
			groups.PUT("", s.ensureGroup)
			groups.DELETE("", s.deleteGroup)
			groups.PUT("/inputs", s.putInputs)
			groups.GET("/inputs", s.getInputs)
			groups.POST("/send", s.send)
			groups.GET("/recv", s.recv)
			groups.POST("/allgather", s.allgather)
			groups.POST("/abort", s.abort)
			groups.PUT("/result", s.putResult)
			groups.GET("/result", s.getResult)
		}
	}
}

// requestLogger logs every request at debug level.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("hub: request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

// addSession registers a new group under id. An existing group of the same
// size is returned unchanged.
func (s *Server) addSession(id string, size int) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.groups[id]; ok {
		if sess.group.Size() != size {
			return nil, fmt.Errorf("%w: group %s has %d members, asked for %d", ErrSizeMismatch, id, sess.group.Size(), size)
		}

		return sess, nil
	}

	sess, err := newSession(id, size)
	if err != nil {
		return nil, err
	}
	s.groups[id] = sess
	groupsActive.Inc()
	s.log.Info("hub: group created", "group", id, "size", size)

	return sess, nil
}

func (s *Server) lookup(c *gin.Context) (*session, bool) {
	id := c.Param("id")

	s.mu.Lock()
	sess, ok := s.groups[id]
	s.mu.Unlock()
	if !ok {
		fail(c, fmt.Errorf("%w: %s", ErrUnknownGroup, id))

		return nil, false
	}

	return sess, true
}

func (s *Server) abortAll(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.groups {
		sess.group.Abort(errors.New(reason))
	}
}

func (s *Server) createGroup(c *gin.Context) {
	var req sizeRequest
	if !bind(c, &req) {
		return
	}

	id := uuid.NewString()
	if _, err := s.addSession(id, req.Size); err != nil {
		fail(c, err)

		return
	}
	c.JSON(http.StatusCreated, groupResponse{ID: id, Size: req.Size})
}

func (s *Server) ensureGroup(c *gin.Context) {
	var req sizeRequest
	if !bind(c, &req) {
		return
	}

	id := c.Param("id")
	if _, err := s.addSession(id, req.Size); err != nil {
		fail(c, err)

		return
	}
	c.JSON(http.StatusOK, groupResponse{ID: id, Size: req.Size})
}

func (s *Server) deleteGroup(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	sess, ok := s.groups[id]
	delete(s.groups, id)
	s.mu.Unlock()
	if !ok {
		fail(c, fmt.Errorf("%w: %s", ErrUnknownGroup, id))

		return
	}

	sess.group.Abort(errors.New("group deleted"))
	groupsActive.Dec()
	s.log.Info("hub: group deleted", "group", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) putInputs(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req Inputs
	if !bind(c, &req) {
		return
	}

	sess.inputsOnce.Do(func() {
		sess.inputs = req
		close(sess.inputsReady)
		s.log.Info("hub: inputs published", "group", sess.id, "n", len(req.A), "m", len(req.B))
	})
	if !sess.inputs.equal(req) {
		fail(c, fmt.Errorf("%w: inputs of group %s", ErrAlreadyPublished, sess.id))

		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getInputs(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	if !wait(c, sess, sess.inputsReady) {
		return
	}
	c.JSON(http.StatusOK, sess.inputs)
}

func (s *Server) send(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req sendRequest
	if !bind(c, &req) {
		return
	}
	if err := checkRank(sess, req.From); err != nil {
		fail(c, err)

		return
	}

	if err := sess.group.Member(req.From).Send(c.Request.Context(), req.To, req.Tag, req.Value); err != nil {
		fail(c, err)

		return
	}
	messagesTotal.Inc()
	c.Status(http.StatusNoContent)
}

func (s *Server) recv(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var q struct {
		From int `form:"from"`
		To   int `form:"to"`
		Tag  int `form:"tag"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, fmt.Errorf("%w: %w", ErrBadRequest, err))

		return
	}
	if err := checkRank(sess, q.To); err != nil {
		fail(c, err)

		return
	}

	v, err := sess.group.Member(q.To).Recv(c.Request.Context(), q.From, q.Tag)
	if err != nil {
		fail(c, err)

		return
	}
	c.JSON(http.StatusOK, recvResponse{Value: v})
}

func (s *Server) allgather(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req allgatherRequest
	if !bind(c, &req) {
		return
	}
	if err := checkRank(sess, req.Rank); err != nil {
		fail(c, err)

		return
	}

	chunks, err := sess.group.Member(req.Rank).Allgather(c.Request.Context(), req.Tag, req.Chunk)
	if err != nil {
		fail(c, err)

		return
	}
	if req.Rank == 0 {
		roundsTotal.Inc()
	}
	c.JSON(http.StatusOK, allgatherResponse{Chunks: chunks})
}

func (s *Server) abort(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req abortRequest
	if !bind(c, &req) {
		return
	}

	if sess.group.Err() == nil {
		abortsTotal.Inc()
		s.log.Warn("hub: group aborted", "group", sess.id, "reason", req.Reason)
	}
	sess.group.Abort(errors.New(req.Reason))
	c.Status(http.StatusNoContent)
}

func (s *Server) putResult(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req Report
	if !bind(c, &req) {
		return
	}

	sess.resultOnce.Do(func() {
		sess.result = req
		close(sess.resultReady)
		s.log.Info("hub: result published", "group", sess.id, "distance", req.Distance, "workers", req.Workers)
	})
	if sess.result != req {
		fail(c, fmt.Errorf("%w: result of group %s", ErrAlreadyPublished, sess.id))

		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getResult(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	if !wait(c, sess, sess.resultReady) {
		return
	}
	c.JSON(http.StatusOK, sess.result)
}

// wait blocks until ready closes, the group is aborted or the request ends.
// It reports whether ready closed; otherwise the response is written.
func wait(c *gin.Context, sess *session, ready <-chan struct{}) bool {
	select {
	case <-ready:
		return true
	default:
	}

	select {
	case <-ready:
		return true
	case <-sess.group.Done():
		fail(c, sess.group.Err())
	case <-c.Request.Context().Done():
		fail(c, c.Request.Context().Err())
	}

	return false
}

func checkRank(sess *session, rank int) error {
	if rank < 0 || rank >= sess.group.Size() {
		return fmt.Errorf("%w: %d of %d", wavefront.ErrInvalidRank, rank, sess.group.Size())
	}

	return nil
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, fmt.Errorf("%w: %w", ErrBadRequest, err))

		return false
	}

	return true
}

// fail writes err with its status and stable code.
func fail(c *gin.Context, err error) {
	status, code := classify(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, wavefront.ErrAborted):
		return http.StatusConflict, codeAborted
	case errors.Is(err, ErrUnknownGroup):
		return http.StatusNotFound, codeUnknownGroup
	case errors.Is(err, ErrSizeMismatch):
		return http.StatusConflict, codeSizeMismatch
	case errors.Is(err, ErrAlreadyPublished):
		return http.StatusConflict, codeAlreadyPublished
	case errors.Is(err, wavefront.ErrInvalidRank):
		return http.StatusBadRequest, codeInvalidRank
	case errors.Is(err, wavefront.ErrInvalidWorkers), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, codeBadRequest
	case errors.Is(err, wavefront.ErrDuplicateContribution):
		return http.StatusConflict, codeDuplicate
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, codeCanceled
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
