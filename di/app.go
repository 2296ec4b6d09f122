package di

import (
	"pawsit/internal/events/worker"
	transportHTTP "pawsit/transport/http"
)

// App bundles the long-running pieces the entry point starts.
type App struct {
	HTTP   *transportHTTP.HTTP
	Worker *worker.Worker
}

func NewApp(http *transportHTTP.HTTP, worker *worker.Worker) *App {
	return &App{
		HTTP:   http,
		Worker: worker,
	}
}
