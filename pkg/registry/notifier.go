package registry

import (
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// notificationType tags the payload of a broadcast message, the same shape
// onionmsg's own notifier uses to let a single websocket stream carry
// several event kinds.
type notificationType string

const (
	notificationGenerationTick notificationType = "GenerationTick"
	notificationGenerated      notificationType = "Generated"
)

// notifier fans out JSON messages to every connected observer, removing
// any connection that errors on write.
type notifier struct {
	mu        sync.Mutex
	observers []*websocket.Conn
}

func (n *notifier) addObserver(conn *websocket.Conn) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers = append(n.observers, conn)
}

func (n *notifier) notify(ntype notificationType, data interface{}) {
	payload := struct {
		Type notificationType `json:"type"`
		Data interface{}      `json:"data"`
	}{ntype, data}

	n.mu.Lock()
	defer n.mu.Unlock()

	live := n.observers[:0]
	for _, conn := range n.observers {
		if err := conn.WriteJSON(payload); err != nil {
			log.WithError(err).Debug("dropping dead registry observer")
			conn.Close()
			continue
		}
		live = append(live, conn)
	}
	n.observers = live
}
