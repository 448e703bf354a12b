// Package monitoring turns a set of controllers into an HTTP server so that a
// browser or a script can drive and inspect them.
package monitoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/adtlab/adt"
	"github.com/sarchlab/adtlab/demo"
	"github.com/sarchlab/adtlab/tracing"
)

// Monitor serves the command API of the registered controllers over HTTP.
// Commands are run one at a time, whatever the number of clients.
type Monitor struct {
	lock        sync.Mutex
	controllers []demo.Controller
	counter     *tracing.FeedbackCounter
	portNumber  int
	listener    net.Listener
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterController registers a controller to be served.
func (m *Monitor) RegisterController(c demo.Controller) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, existing := range m.controllers {
		if existing.Name() == c.Name() {
			panic("controller " + c.Name() + " registered twice")
		}
	}

	m.controllers = append(m.controllers, c)
}

// RegisterFeedbackCounter exposes the counts of a counter at /api/stats. The
// caller is responsible for attaching the counter to the controllers.
func (m *Monitor) RegisterFeedbackCounter(counter *tracing.FeedbackCounter) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.counter = counter
}

// Handler returns the router that serves the API.
func (m *Monitor) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/list_containers", m.listContainers).Methods("GET")
	r.HandleFunc("/api/container/{name}", m.containerDetails).Methods("GET")
	r.HandleFunc("/api/containers", m.containerLevels).Methods("GET")
	r.HandleFunc("/api/command/{name}/{op}", m.runCommand).Methods("POST")
	r.HandleFunc("/api/stats", m.listStats).Methods("GET")
	r.HandleFunc("/api/resource", m.listResources).Methods("GET")
	r.HandleFunc("/api/profile", m.collectProfile).Methods("GET")

	return r
}

// StartServer starts the monitor as a web server and returns its URL.
func (m *Monitor) StartServer() string {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.listener = listener

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Serving the lab at %s\n", url)

	go func() {
		err := http.Serve(listener, m.Handler())
		if err != nil && !errors.Is(err, net.ErrClosed) {
			dieOnErr(err)
		}
	}()

	return url
}

// StopServer closes the listener opened by StartServer.
func (m *Monitor) StopServer() error {
	if m.listener == nil {
		return nil
	}

	return m.listener.Close()
}

func (m *Monitor) listContainers(w http.ResponseWriter, _ *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	names := make([]string, 0, len(m.controllers))
	for _, c := range m.controllers {
		names = append(names, c.Name())
	}

	writeJSON(w, names)
}

func (m *Monitor) containerDetails(w http.ResponseWriter, r *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	c := m.findControllerOr404(w, mux.Vars(r)["name"])
	if c == nil {
		return
	}

	view := c.View()

	serializer := goseth.NewSerializer()
	serializer.SetRoot(&view)
	serializer.SetMaxDepth(containerDetailDepth)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

// containerDetailDepth reaches the fields of every projected item: the view
// is at depth 0, its items slice at 1 and each item at 2.
const containerDetailDepth = 3

type commandRsp struct {
	View     demo.ViewState     `json:"view"`
	Feedback demo.FeedbackEvent `json:"feedback"`
}

func (m *Monitor) runCommand(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	op, err := demo.ParseOp(vars["op"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	cmd := demo.Command{
		Op:    op,
		Value: adt.Value(r.URL.Query().Get("value")),
	}

	if op == demo.OpSetCapacity {
		cmd.Capacity, err = strconv.Atoi(r.URL.Query().Get("capacity"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Error: capacity must be an integer")

			return
		}
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	c := m.findControllerOr404(w, vars["name"])
	if c == nil {
		return
	}

	view, event := c.Dispatch(cmd)

	writeJSON(w, commandRsp{View: view, Feedback: event})
}

func (m *Monitor) containerLevels(w http.ResponseWriter, r *http.Request) {
	sortMethod, limit, offset, err := m.levelsParseParams(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	m.lock.Lock()
	views := make([]demo.ViewState, 0, len(m.controllers))
	for _, c := range m.controllers {
		views = append(views, c.View())
	}
	m.lock.Unlock()

	views = sortAndSelectViews(views, sortMethod, limit, offset)

	type level struct {
		Container string `json:"container"`
		Level     int    `json:"level"`
		Cap       int    `json:"cap"`
	}

	levels := make([]level, 0, len(views))
	for _, v := range views {
		levels = append(levels, level{
			Container: v.Name,
			Level:     v.Size,
			Cap:       v.Capacity,
		})
	}

	writeJSON(w, levels)
}

func (*Monitor) levelsParseParams(
	r *http.Request,
) (sortMethod string, limit, offset int, err error) {
	sortMethod = r.URL.Query().Get("sort")
	if sortMethod == "" {
		sortMethod = "percent"
	}

	if sortMethod != "level" && sortMethod != "percent" {
		return "", 0, 0, fmt.Errorf(
			"invalid sort method: %s. Allowed values are `level` and `percent`",
			sortMethod)
	}

	limit, err = intParam(r, "limit")
	if err != nil {
		return sortMethod, 0, 0, err
	}

	offset, err = intParam(r, "offset")
	if err != nil {
		return sortMethod, limit, 0, err
	}

	if limit < 0 || offset < 0 {
		return sortMethod, 0, 0, errors.New("limit and offset must not be negative")
	}

	return sortMethod, limit, offset, nil
}

func intParam(r *http.Request, name string) (int, error) {
	str := r.URL.Query().Get(name)
	if str == "" {
		return 0, nil
	}

	return strconv.Atoi(str)
}

func fillPercent(v demo.ViewState) float64 {
	return float64(v.Size) / float64(v.Capacity)
}

// sortAndSelectViews orders the views by fill and pages through them. A limit
// of 0 selects everything after the offset.
func sortAndSelectViews(
	views []demo.ViewState,
	sortMethod string,
	limit, offset int,
) []demo.ViewState {
	byLevel := func(i, j int) bool {
		if views[i].Size != views[j].Size {
			return views[i].Size > views[j].Size
		}

		return fillPercent(views[i]) > fillPercent(views[j])
	}

	byPercent := func(i, j int) bool {
		pi, pj := fillPercent(views[i]), fillPercent(views[j])
		if pi != pj {
			return pi > pj
		}

		return views[i].Size > views[j].Size
	}

	switch sortMethod {
	case "level":
		sort.SliceStable(views, byLevel)
	case "percent":
		sort.SliceStable(views, byPercent)
	default:
		panic("Invalid sort method " + sortMethod)
	}

	if offset > len(views) {
		offset = len(views)
	}

	end := len(views)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return views[offset:end]
}

func (m *Monitor) findControllerOr404(
	w http.ResponseWriter,
	name string,
) demo.Controller {
	for _, c := range m.controllers {
		if c.Name() == name {
			return c
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("Container not found"))
	dieOnErr(err)

	return nil
}

func (m *Monitor) listStats(w http.ResponseWriter, _ *http.Request) {
	m.lock.Lock()
	counter := m.counter
	m.lock.Unlock()

	if counter == nil {
		writeJSON(w, []tracing.FeedbackCount{})
		return
	}

	writeJSON(w, counter.Counts())
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
