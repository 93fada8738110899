package main

import (
	"bytes"
	json "github.com/bytedance/sonic"
	"log/slog"
	"net/http"
	"sumSheet/contracts"
	"sync"
	"sync/atomic"
	"time"
)

const WebhookWorkersCount = 5

const webhookQueueSize = 100

// WebhookPayload is a changed cell together with the sequence number of the
// commit that changed it. Deliveries run on several workers, so subscribers
// order them by Sequence.
type WebhookPayload struct {
	contracts.Cell
	Sequence uint64 `json:"sequence"`
}

type WebhookSendCommand struct {
	Webhook string
	Payload WebhookPayload
}

// WebhookDispatcher posts cells changed by a commit to the webhook subscribed
// to each of them. Delivery is best effort: failures are logged, not retried,
// and notifications are dropped while the queue is full.
type WebhookDispatcher struct {
	mu       sync.RWMutex
	closed   bool
	sequence atomic.Uint64
	queue    chan WebhookSendCommand
	webhooks map[string]string
	client   *http.Client
	logger   *slog.Logger
	workers  sync.WaitGroup
}

func NewWebhookDispatcher(logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, webhookQueueSize),
		webhooks: map[string]string{},
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger,
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(cellId string, webhookUrl string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, cellId)
	} else {
		manager.webhooks[cellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(cellId string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	return manager.webhooks[cellId]
}

// Notify queues the subscribed cells of one commit and returns without
// waiting for the workers. Calls get increasing sequence numbers.
func (manager *WebhookDispatcher) Notify(cells []*contracts.Cell) {
	sequence := manager.sequence.Add(1)

	// the read lock keeps Close from closing the queue during a send
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	if manager.closed {
		return
	}

	for _, cell := range cells {
		webhook, ok := manager.webhooks[cell.Id]
		if !ok {
			continue
		}

		select {
		case manager.queue <- WebhookSendCommand{
			Webhook: webhook,
			Payload: WebhookPayload{Cell: *cell, Sequence: sequence},
		}:
		default:
			manager.logger.Warn("webhook queue is full, notification dropped", "webhook", webhook, "cell_id", cell.Id, "sequence", sequence)
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close stops accepting notifications and waits for queued ones to be sent.
func (manager *WebhookDispatcher) Close() {
	manager.mu.Lock()
	if manager.closed {
		manager.mu.Unlock()
		return
	}
	manager.closed = true
	close(manager.queue)
	manager.mu.Unlock()

	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	for command := range manager.queue {
		manager.send(command)
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	cellId := command.Payload.Id

	payload, err := json.Marshal(command.Payload)
	if err != nil {
		manager.logger.Error("webhook payload", "cell_id", cellId, "error", err)
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		manager.logger.Warn("webhook send error", "webhook", command.Webhook, "cell_id", cellId, "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		manager.logger.Warn("unexpected webhook response", "webhook", command.Webhook, "status", response.Status)
	}
}
