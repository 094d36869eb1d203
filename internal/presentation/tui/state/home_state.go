package state

import "github.com/tesso57/headlines/internal/domain/news"

// HomeState is the home screen lifecycle state. It is exactly one of
// Init, Loading, Failure or Success.
type HomeState interface {
	Accept(v HomeVisitor)
	Name() string
	isHomeState()
}

// HomeVisitor receives the active HomeState variant. Implementations must
// handle every variant, so a renderer missing a branch does not compile.
type HomeVisitor interface {
	VisitInit()
	VisitLoading()
	VisitFailure()
	VisitSuccess(page news.Page)
}

// Init is the state before any fetch was requested.
type Init struct{}

// Loading is the state while a fetch is in flight.
type Loading struct{}

// Failure is the state after a failed fetch. It carries no cause.
type Failure struct{}

// Success holds the fetched page.
type Success struct {
	Page news.Page
}

func (Init) Accept(v HomeVisitor)      { v.VisitInit() }
func (Loading) Accept(v HomeVisitor)   { v.VisitLoading() }
func (Failure) Accept(v HomeVisitor)   { v.VisitFailure() }
func (s Success) Accept(v HomeVisitor) { v.VisitSuccess(s.Page) }

func (Init) Name() string    { return "init" }
func (Loading) Name() string { return "loading" }
func (Failure) Name() string { return "failure" }
func (Success) Name() string { return "success" }

func (Init) isHomeState()    {}
func (Loading) isHomeState() {}
func (Failure) isHomeState() {}
func (Success) isHomeState() {}
