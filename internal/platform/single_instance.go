package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const activateCommand = "activate"

// InstanceGuard holds the single-instance lock and listens for activation
// requests from later instances.
type InstanceGuard struct {
	listener   net.Listener
	address    string
	mu         sync.Mutex
	onActivate func()
}

// AcquireSingleInstance attempts to bind a deterministic localhost port.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	guard := &InstanceGuard{listener: listener, address: address}
	go guard.serve()
	return guard, nil
}

// ActivateRunning asks the instance holding the lock to show itself.
func ActivateRunning(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), time.Second)
	if err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	defer conn.Close()
	if _, err := fmt.Fprintln(conn, activateCommand); err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	return nil
}

// SetOnActivate sets the handler for activation requests.
func (guard *InstanceGuard) SetOnActivate(handler func()) {
	guard.mu.Lock()
	guard.onActivate = handler
	guard.mu.Unlock()
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve() {
	for {
		conn, err := guard.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				slog.Debug("instance guard accept", "error", err)
			}
			return
		}
		go guard.handle(conn)
	}
}

func (guard *InstanceGuard) handle(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil || strings.TrimSpace(line) != activateCommand {
		return
	}

	guard.mu.Lock()
	handler := guard.onActivate
	guard.mu.Unlock()
	if handler != nil {
		handler()
	}
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
