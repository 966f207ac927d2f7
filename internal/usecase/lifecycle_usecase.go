package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mantranwebapi/internal/domain/entities"
	"mantranwebapi/internal/usecase/interfaces"
)

var (
	ErrWorkItemNotFound    = errors.New("work item not found")
	ErrInvalidWorkItemID   = errors.New("invalid work item id")
	ErrScreenRequired      = errors.New("screen label is required")
	ErrTaskAlreadyClaimed  = errors.New("task already claimed by another technician")
	ErrWorkItemComplete    = errors.New("work item is already complete")
	ErrTimerAlreadyRunning = errors.New("a time entry is already open for this work item")
	ErrTimerNotRunning     = errors.New("no open time entry for this work item")
	ErrStatusesNotTerminal = errors.New("all three sub-statuses must be terminal to finalize")
	ErrInvalidStatusField  = errors.New("invalid status field")
	ErrInvalidStatusValue  = errors.New("invalid status value")
)

// ILifecycleUseCase is the task-claim protocol plus the status/lifecycle
// state machine of a work item.
//
// Every transition re-derives its guards ("open time entry?", "complete?")
// from freshly fetched state and refuses illegal calls before touching the
// network. That guard duty prevents redundant calls only; the one true
// cross-actor race (claiming) is resolved by the store's atomic conditional
// update, not here.

type ILifecycleUseCase interface {
	Claim(ctx context.Context, workItemID string, technician entities.User, screen string) (entities.WorkItem, error)
	Start(ctx context.Context, workItemID string, technician entities.User) error
	Pause(ctx context.Context, workItemID string, technician entities.User) error
	Resume(ctx context.Context, workItemID string, technician entities.User) error
	Finalize(ctx context.Context, workItemID string, technician entities.User) error
	SetSubStatus(ctx context.Context, workItemID string, field entities.StatusField, status entities.Status) error
	SaveNotes(ctx context.Context, workItemID, notes string) (entities.WorkItem, error)

	MyTasks(ctx context.Context, technicianID string) ([]entities.WorkItem, []string, error)
	Pending(ctx context.Context, f interfaces.PendingFilter) ([]entities.WorkItem, error)
}

type LifecycleUseCase struct {
	items   interfaces.IWorkItemRepository
	entries interfaces.ITimeEntryRepository
	procs   interfaces.IWorkItemProcedures
	vocab   entities.StatusVocabulary
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(
	items interfaces.IWorkItemRepository,
	entries interfaces.ITimeEntryRepository,
	procs interfaces.IWorkItemProcedures,
	vocab entities.StatusVocabulary,
) *LifecycleUseCase {
	return &LifecycleUseCase{items: items, entries: entries, procs: procs, vocab: vocab}
}

// Claim attempts the unassigned → assigned transition. Losing the race is an
// expected, recoverable outcome surfaced as ErrTaskAlreadyClaimed; callers
// should refresh the pending list in response.
func (u *LifecycleUseCase) Claim(ctx context.Context, workItemID string, technician entities.User, screen string) (entities.WorkItem, error) {
	workItemID = strings.TrimSpace(workItemID)
	if workItemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}
	screen = strings.TrimSpace(screen)
	if screen == "" {
		return entities.WorkItem{}, ErrScreenRequired
	}

	claimed, err := u.items.Claim(ctx, workItemID, technician.ID, technician.Name, screen, time.Now().UTC())
	if err != nil {
		return entities.WorkItem{}, err
	}
	if claimed.ID == "" {
		log.Printf("[lifecycle][usecase] claim lost race work_item=%s technician=%s", workItemID, technician.ID)
		return entities.WorkItem{}, ErrTaskAlreadyClaimed
	}
	log.Printf("[lifecycle][usecase] claim success work_item=%s technician=%s", workItemID, technician.ID)
	return claimed, nil
}

func (u *LifecycleUseCase) Start(ctx context.Context, workItemID string, technician entities.User) error {
	item, open, err := u.freshState(ctx, workItemID)
	if err != nil {
		return err
	}
	if item.Complete(u.vocab) {
		return ErrWorkItemComplete
	}
	if open {
		return ErrTimerAlreadyRunning
	}
	return u.procs.StartWork(ctx, workItemID, technician.ID, technician.Name)
}

func (u *LifecycleUseCase) Pause(ctx context.Context, workItemID string, technician entities.User) error {
	_, open, err := u.freshState(ctx, workItemID)
	if err != nil {
		return err
	}
	if !open {
		return ErrTimerNotRunning
	}
	return u.procs.PauseWork(ctx, workItemID, technician.ID)
}

// Resume is semantically Start after prior work; the store distinguishes
// the two procedures for bookkeeping, the guards are identical.
func (u *LifecycleUseCase) Resume(ctx context.Context, workItemID string, technician entities.User) error {
	item, open, err := u.freshState(ctx, workItemID)
	if err != nil {
		return err
	}
	if item.Complete(u.vocab) {
		return ErrWorkItemComplete
	}
	if open {
		return ErrTimerAlreadyRunning
	}
	return u.procs.ResumeWork(ctx, workItemID, technician.ID, technician.Name)
}

func (u *LifecycleUseCase) Finalize(ctx context.Context, workItemID string, technician entities.User) error {
	item, open, err := u.freshState(ctx, workItemID)
	if err != nil {
		return err
	}
	// Finalization is what records the end date, so "already done" here is
	// the end date being set, not the facets being terminal.
	if item.FinishedAt != nil {
		return ErrWorkItemComplete
	}
	if open {
		return ErrTimerAlreadyRunning
	}
	if item.StatusAPI != u.vocab.Terminal ||
		item.StatusTest != u.vocab.Terminal ||
		item.StatusDocumentation != u.vocab.Terminal {
		return ErrStatusesNotTerminal
	}
	return u.procs.FinishWork(ctx, workItemID, technician.ID)
}

// SetSubStatus is the only mutation that can flip the finalize-eligible
// predicate. Legal for any of the three fields while the item is not
// complete.
func (u *LifecycleUseCase) SetSubStatus(ctx context.Context, workItemID string, field entities.StatusField, status entities.Status) error {
	if !entities.ValidStatusField(field) {
		return ErrInvalidStatusField
	}
	if !u.vocab.Valid(status) {
		return ErrInvalidStatusValue
	}

	item, _, err := u.freshState(ctx, workItemID)
	if err != nil {
		return err
	}
	if item.Complete(u.vocab) {
		return ErrWorkItemComplete
	}
	return u.procs.UpdateStatus(ctx, workItemID, field, status)
}

func (u *LifecycleUseCase) SaveNotes(ctx context.Context, workItemID, notes string) (entities.WorkItem, error) {
	workItemID = strings.TrimSpace(workItemID)
	if workItemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}
	updated, err := u.items.UpdateNotes(ctx, workItemID, notes)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if updated.ID == "" {
		return entities.WorkItem{}, ErrWorkItemNotFound
	}
	return updated, nil
}

func (u *LifecycleUseCase) MyTasks(ctx context.Context, technicianID string) ([]entities.WorkItem, []string, error) {
	items, err := u.items.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, nil, err
	}
	openIDs, err := u.entries.OpenWorkItemIDs(ctx, technicianID)
	if err != nil {
		return nil, nil, err
	}
	return items, openIDs, nil
}

func (u *LifecycleUseCase) Pending(ctx context.Context, f interfaces.PendingFilter) ([]entities.WorkItem, error) {
	return u.items.ListPending(ctx, f)
}

// freshState fetches the item and whether any technician holds an open time
// entry on it. Transitions must not trust stale caller state.
func (u *LifecycleUseCase) freshState(ctx context.Context, workItemID string) (entities.WorkItem, bool, error) {
	workItemID = strings.TrimSpace(workItemID)
	if workItemID == "" {
		return entities.WorkItem{}, false, ErrInvalidWorkItemID
	}

	item, err := u.items.GetByID(ctx, workItemID)
	if err != nil {
		return entities.WorkItem{}, false, err
	}
	if item.ID == "" {
		return entities.WorkItem{}, false, ErrWorkItemNotFound
	}

	openIDs, err := u.entries.OpenWorkItemIDs(ctx, "")
	if err != nil {
		return entities.WorkItem{}, false, err
	}
	for _, id := range openIDs {
		if id == workItemID {
			return item, true, nil
		}
	}
	return item, false, nil
}
