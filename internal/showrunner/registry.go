package showrunner

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/validator"
)

var (
	// ErrTaskNotFound is returned by Registry.Task for unknown channel/task pairs.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTask is returned when a channel registers the same task name twice.
	ErrDuplicateTask = errors.New("task already registered")
)

// ChannelStatus describes one registered channel.
type ChannelStatus struct {
	Name     string   `json:"name"`
	Address  string   `json:"address,omitempty"`
	Operable bool     `json:"operable"`
	Error    string   `json:"error,omitempty"`
	Tasks    []string `json:"tasks"`
}

// Registry indexes the channels and tasks of a process.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]*ChannelContext
	tasks    map[string]map[string]Task
}

func NewRegistry() *Registry {
	return &Registry{
		channels: make(map[string]*ChannelContext),
		tasks:    make(map[string]map[string]Task),
	}
}

// Register adds cc and its tasks. Every task must belong to cc, and names
// must be slugs.
func (r *Registry) Register(cc *ChannelContext, tasks ...Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cc.Identity.Name
	if err := validator.Var(name, "required,slug"); err != nil {
		return fmt.Errorf("channel name: %w", err)
	}
	r.channels[name] = cc

	if r.tasks[name] == nil {
		r.tasks[name] = make(map[string]Task)
	}

	for _, task := range tasks {
		if task.Channel() != name {
			return fmt.Errorf("task %s belongs to channel %s, not %s", task.Name(), task.Channel(), name)
		}

		if err := validator.Var(task.Name(), "required,slug"); err != nil {
			return fmt.Errorf("task name: %w", err)
		}

		if _, ok := r.tasks[name][task.Name()]; ok {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateTask, name, task.Name())
		}
		r.tasks[name][task.Name()] = task
	}

	return nil
}

func (r *Registry) Task(channel, name string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[channel][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTaskNotFound, channel, name)
	}
	return task, nil
}

// Tasks lists every task ordered by channel then name.
func (r *Registry) Tasks() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []Task
	for _, byName := range r.tasks {
		for _, task := range byName {
			tasks = append(tasks, task)
		}
	}

	slices.SortFunc(tasks, func(a, b Task) int {
		return cmp.Or(cmp.Compare(a.Channel(), b.Channel()), cmp.Compare(a.Name(), b.Name()))
	})
	return tasks
}

// Channels lists the registered channels ordered by name.
func (r *Registry) Channels() []ChannelStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make([]ChannelStatus, 0, len(r.channels))
	for name, cc := range r.channels {
		status := ChannelStatus{
			Name:     name,
			Address:  cc.Identity.Address,
			Operable: cc.Inoperable == nil,
			Tasks:    make([]string, 0, len(r.tasks[name])),
		}
		if cc.Inoperable != nil {
			status.Error = cc.Inoperable.Error()
		}

		for task := range r.tasks[name] {
			status.Tasks = append(status.Tasks, task)
		}
		slices.Sort(status.Tasks)

		statuses = append(statuses, status)
	}

	slices.SortFunc(statuses, func(a, b ChannelStatus) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return statuses
}
