package cluster

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/angeloszaimis/nodeselect/config"
	"github.com/angeloszaimis/nodeselect/internal/eviction"
	"github.com/angeloszaimis/nodeselect/internal/strategy"
	"github.com/angeloszaimis/nodeselect/pkg/logger"
)

var ErrNoNodeAvailable = errors.New("no node available")

// Node is a named backend target.
type Node struct {
	Name    string
	Address string
}

func (n Node) String() string {
	return n.Name + "@" + n.Address
}

type Cluster struct {
	name     string
	strategy strategy.Strategy[Node]
	trackers *eviction.Registry
	logger   *slog.Logger
}

type Option func(*Cluster)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cluster) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEviction removes a node once threshold consecutive failures are
// reported within window. A threshold of 0 disables eviction.
func WithEviction(threshold int, window time.Duration) Option {
	return func(c *Cluster) {
		c.trackers = eviction.NewRegistry(threshold, window)
	}
}

func New(name string, strat strategy.Strategy[Node], opts ...Option) *Cluster {
	c := &Cluster{
		name:     name,
		strategy: strat,
		trackers: eviction.NewRegistry(0, 0),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With(slog.String("cluster", name))
	return c
}

// NewFromConfig builds a cluster with the configured strategy and nodes.
// A nil log is replaced by one built from the logging section of cfg.
func NewFromConfig(cfg *config.Config, log *slog.Logger) (*Cluster, error) {
	strat, err := strategy.New(cfg.Strategy.Type, NodesFromConfig(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("cluster %s: %w", cfg.Cluster.Name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cluster %s: invalid config: %w", cfg.Cluster.Name, err)
	}

	window, err := cfg.WindowDuration()
	if err != nil {
		return nil, fmt.Errorf("cluster %s: %w", cfg.Cluster.Name, err)
	}

	if log == nil {
		log = logger.New(cfg.Logging.Level, cfg.Logging.Format, false)
	}

	c := New(cfg.Cluster.Name, strat,
		WithLogger(log),
		WithEviction(cfg.Eviction.FailureThreshold, window),
	)

	c.logger.Info("Cluster created",
		slog.String("strategy", strat.Name()),
		slog.Int("nodes", len(cfg.Nodes)))

	return c, nil
}

func NodesFromConfig(cfg *config.Config) []Node {
	nodes := make([]Node, 0, len(cfg.Nodes))
	for _, n := range cfg.Nodes {
		nodes = append(nodes, Node{Name: n.Name, Address: n.Address})
	}
	return nodes
}

// Pick returns the node that should handle the next unit of work.
func (c *Cluster) Pick() (Node, error) {
	node, ok := c.strategy.Next()
	if !ok {
		c.logger.Warn("No node available")
		return Node{}, ErrNoNodeAvailable
	}

	c.logger.Debug("Node selected", slog.String("node", node.String()))
	return node, nil
}

// Evict removes the first node with the given name.
func (c *Cluster) Evict(name string) bool {
	removed := c.strategy.RemoveNode(func(n Node) bool { return n.Name == name })
	c.trackers.Forget(name)

	if removed {
		c.logger.Info("Node evicted", slog.String("node", name))
	} else {
		c.logger.Debug("Node not found for eviction", slog.String("node", name))
	}

	return removed
}

// ReportFailure records a failed unit of work against n and evicts it once
// its tracker trips. It reports whether n was evicted.
func (c *Cluster) ReportFailure(n Node) bool {
	if !c.trackers.Enabled() {
		return false
	}

	if !c.trackers.Tracker(n.Name).RecordFailure() {
		return false
	}

	c.logger.Warn("Node failure threshold reached", slog.String("node", n.String()))
	return c.Evict(n.Name)
}

func (c *Cluster) ReportSuccess(n Node) {
	if !c.trackers.Enabled() {
		return
	}
	c.trackers.Tracker(n.Name).RecordSuccess()
}

// Replace hands the strategy a new node set and clears failure history.
func (c *Cluster) Replace(nodes []Node) {
	c.strategy.Init(nodes)
	c.trackers.Reset()

	c.logger.Info("Node set replaced", slog.Int("nodes", len(nodes)))
}

// Follow replaces the node set every time the loader sees a valid config
// change. The strategy type is fixed for the cluster's lifetime, so a
// changed strategy in the new file is only logged.
func (c *Cluster) Follow(loader *config.Loader) {
	loader.Watch(func(cfg *config.Config) {
		if cfg.Strategy.Type != c.strategy.Name() {
			c.logger.Warn("Ignoring strategy change on reload",
				slog.String("current", c.strategy.Name()),
				slog.String("requested", cfg.Strategy.Type))
		}
		c.Replace(NodesFromConfig(cfg))
	})
}

func (c *Cluster) Nodes() []Node {
	return c.strategy.GetAllNodes()
}

// Failures returns the current failure count per node name.
func (c *Cluster) Failures() map[string]int {
	return c.trackers.Stats()
}

func (c *Cluster) Logger() *slog.Logger {
	return c.logger
}

func (c *Cluster) Name() string {
	return c.name
}

func (c *Cluster) Strategy() string {
	return c.strategy.Name()
}
