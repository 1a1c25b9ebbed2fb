package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

const wsWriteTimeout = 10 * time.Second

// wsClient serialises writes, since scene events and the stats ticker
// write from different goroutines.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) write(packet []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return c.conn.WriteMessage(websocket.TextMessage, packet)
}

// @Summary	Open websocket for realtime stats and events
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		a.logger.Error("couldn't make websocket", "err", err)
		return
	}
	client := &wsClient{conn: ws}
	defer func() {
		a.removeClient(client)
		_ = ws.Close()
	}()
	a.addClient(client)

	done := make(chan struct{})
	defer close(done)
	go a.websocketWriter(client, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.logger.Debug(fmt.Sprintf("Received: %s", msg))
	}
}

func (a *Api) websocketWriter(client *wsClient, done <-chan struct{}) {
	pingTicker := time.NewTicker(2 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case <-done:
			return
		case <-pingTicker.C:
		}
		packet, err := json.Marshal(a.Stats.Snapshot())
		if err != nil {
			return
		}
		if err := client.write(packet); err != nil {
			return
		}
	}
}

func (a *Api) addClient(c *wsClient) {
	a.wsMutex.Lock()
	a.wsClients[c] = true
	n := len(a.wsClients)
	a.wsMutex.Unlock()
	a.Stats.SetWsClients(n)
}

func (a *Api) removeClient(c *wsClient) {
	a.wsMutex.Lock()
	delete(a.wsClients, c)
	n := len(a.wsClients)
	a.wsMutex.Unlock()
	a.Stats.SetWsClients(n)
}

func (a *Api) broadcast(event interface{}) {
	packet, err := json.Marshal(event)
	if err != nil {
		a.logger.Error("could not encode event", "err", err)
		return
	}

	a.wsMutex.Lock()
	clients := make([]*wsClient, 0, len(a.wsClients))
	for c := range a.wsClients {
		clients = append(clients, c)
	}
	a.wsMutex.Unlock()

	for _, c := range clients {
		if err := c.write(packet); err != nil {
			a.logger.Debug(fmt.Sprintf("dropping event for websocket client: %s", err))
		}
	}
}
