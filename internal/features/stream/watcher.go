// ================== internal/features/stream/watcher.go ==================
package stream

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Loader fetches the full current contents of a collection.
type Loader func(ctx context.Context) (interface{}, error)

// Watcher tails a Mongo change stream and re-broadcasts the complete
// collection snapshot on every event. No incremental updates: any change
// triggers a full reload, which keeps subscribers' projections trivially
// consistent with the store.
type Watcher struct {
	hub        *Hub
	collection *mongo.Collection
	name       string
	load       Loader
}

func NewWatcher(hub *Hub, db *mongo.Database, name, mongoName string, load Loader) *Watcher {
	return &Watcher{
		hub:        hub,
		collection: db.Collection(mongoName),
		name:       name,
		load:       load,
	}
}

// Run blocks tailing the change stream until ctx is cancelled. Call it in
// its own goroutine. The driver resumes the stream across transient
// disconnects on its own.
func (w *Watcher) Run(ctx context.Context) {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	cs, err := w.collection.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		log.Printf("change stream for %s unavailable: %v", w.name, err)
		return
	}
	defer cs.Close(context.Background())

	for cs.Next(ctx) {
		items, err := w.load(ctx)
		if err != nil {
			log.Printf("snapshot reload for %s failed: %v", w.name, err)
			continue
		}

		w.hub.Publish(Snapshot{
			Collection: w.name,
			Items:      items,
			At:         time.Now(),
		})
	}

	if err := cs.Err(); err != nil && ctx.Err() == nil {
		log.Printf("change stream for %s ended: %v", w.name, err)
	}
}
