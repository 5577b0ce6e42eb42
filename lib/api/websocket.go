package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		status
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		a.log.Warn(fmt.Sprintf("couldn't make websocket: %s", err))
		return
	}
	defer func(ws *websocket.Conn) {
		a.removeClient(ws)
		_ = ws.Close()
	}(ws)
	a.addClient(ws)

	done := make(chan struct{})
	defer close(done)
	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.log.Debug(fmt.Sprintf("websocket received: %s", msg))
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsMu.Lock()
	defer a.wsMu.Unlock()
	a.wsClients[ws] = true
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsMu.Lock()
	defer a.wsMu.Unlock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
}

// send serialises writes: gorilla connections allow one concurrent writer.
func (a *Api) send(ws *websocket.Conn, packet []byte) error {
	a.wsMu.Lock()
	defer a.wsMu.Unlock()
	err := ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return ws.WriteMessage(websocket.TextMessage, packet)
}

// broadcast sends data as JSON to every connected websocket.
func (a *Api) broadcast(data interface{}) {
	packet, err := json.Marshal(data)
	if err != nil {
		a.log.Warn(fmt.Sprintf("could not encode event: %s", err))
		return
	}

	a.wsMu.Lock()
	clients := make([]*websocket.Conn, 0, len(a.wsClients))
	for ws := range a.wsClients {
		clients = append(clients, ws)
	}
	a.wsMu.Unlock()

	for _, ws := range clients {
		if err := a.send(ws, packet); err != nil {
			a.log.Debug(fmt.Sprintf("could not send event: %s", err))
		}
	}
}

func (a *Api) sendStats(ws *websocket.Conn) error {
	packet, err := json.Marshal(a.Stats.Snapshot())
	if err != nil {
		return err
	}
	return a.send(ws, packet)
}

func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	if err := a.sendStats(ws); err != nil {
		return
	}

	pingTicker := time.NewTicker(2 * time.Second)
	defer pingTicker.Stop()
	for {
		select {
		case <-done:
			return
		case <-pingTicker.C:
			if err := a.sendStats(ws); err != nil {
				return
			}
		}
	}
}
