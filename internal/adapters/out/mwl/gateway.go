// Package mwl implements the modality worklist gateway over HTTP.
//
// A notification is synchronous and single-attempt: one POST per Notify call.
// The gateway translates the remote verdict into the study's worklist
// synchronization status and persists it through the study repository before
// returning, so that callers can observe the outcome with a follow-up read.
package mwl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
)

// notification is the wire payload announcing an order lifecycle event to the
// worklist broker.
type notification struct {
	Action           string `json:"action"`
	OrderID          int64  `json:"order_id"`
	StudyID          int64  `json:"study_id"`
	StudyInstanceUID string `json:"study_instance_uid"`
	Modality         string `json:"modality"`
	Priority         string `json:"priority"`
}

// Gateway notifies the modality worklist over HTTP and records the outcome
// on the study's persisted record.
type Gateway struct {
	client  *http.Client
	url     string
	studies ports.StudyRepository
}

// NewGateway creates a worklist gateway posting to the given URL. The
// timeout caps each notification attempt; an expired attempt is a transport
// error, not a worklist refusal.
func NewGateway(url string, timeout time.Duration, studies ports.StudyRepository) *Gateway {
	return &Gateway{
		client:  &http.Client{Timeout: timeout},
		url:     url,
		studies: studies,
	}
}

// Notify announces the action for the given study and persists the resulting
// synchronization status. A 2xx response records the action's "ok" status,
// any other response records the "err" status; both are nil-error results.
// A transport or storage failure is returned as an error and leaves the
// persisted status untouched.
//
// A save for a study that was announced before is reported to the worklist
// as an update and recorded with the update status pair.
func (g *Gateway) Notify(ctx context.Context, s *study.Study, action study.WorklistAction) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := action.Validate(); err != nil {
		return err
	}

	wireAction := action.String()
	if action == study.ActionSave && s.MwlStatus() != study.MwlDefault {
		wireAction = "update_order"
	}

	ok, err := g.post(ctx, s, wireAction)
	if err != nil {
		return fmt.Errorf("worklist notify %s: %w", wireAction, err)
	}

	status := recordedStatus(action, s, ok)
	if err = g.studies.UpdateWorklistStatus(ctx, s.ID(), status); err != nil {
		return fmt.Errorf("record worklist status %s: %w", status, err)
	}

	return s.RecordWorklistOutcome(status)
}

// post performs the single notification attempt. The boolean reports whether
// the worklist accepted the event.
func (g *Gateway) post(ctx context.Context, s *study.Study, wireAction string) (bool, error) {
	payload := notification{
		Action:           wireAction,
		OrderID:          s.OrderID().Int64(),
		StudyID:          s.ID().Int64(),
		StudyInstanceUID: s.StudyInstanceUID(),
		Modality:         s.Modality().String(),
		Priority:         s.Priority().String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

// recordedStatus maps the attempt result onto the status pair of the action
// that was effectively announced.
func recordedStatus(action study.WorklistAction, s *study.Study, ok bool) study.MwlStatus {
	if action == study.ActionSave && s.MwlStatus() != study.MwlDefault {
		if ok {
			return study.MwlUpdateOK
		}
		return study.MwlUpdateErr
	}

	if ok {
		return action.OKFor()
	}
	return action.ErrFor()
}
