package expansion

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/time/rate"

	"voxelterra/internal/config"
	"voxelterra/internal/meshing"
	"voxelterra/internal/profiling"
	"voxelterra/internal/terrain"
	"voxelterra/internal/world"
)

// ErrClosed is returned by edits issued after Close.
var ErrClosed = errors.New("scheduler closed")

// resultSink forwards painter output to the scheduler's channels.
type resultSink struct {
	filled chan<- *world.Chunk
	zones  chan<- world.Key
}

func (r resultSink) ChunkFilled(c *world.Chunk)   { r.filled <- c }
func (r resultSink) ZoneGenerated(zone world.Key) { r.zones <- zone }

// Scheduler keeps the zones around a moving focus generated and meshed.
// Paint and mesh work runs on a shared worker pool and reports back over
// channels; every other method must be called from a single coordinating
// goroutine.
type Scheduler struct {
	idx     *world.Index
	painter *terrain.Painter
	pool    pond.Pool
	log     *slog.Logger

	radius  int
	limiter *rate.Limiter
	clock   time.Time

	filled chan *world.Chunk
	zones  chan world.Key
	meshes chan meshing.ChunkMesh

	// inflight counts submitted paint and mesh tasks that have not
	// finished publishing.
	inflight sync.WaitGroup
	pending  []*world.Chunk

	generated  map[world.Key]struct{}
	generating map[world.Key]struct{}
	visible    map[world.Key]struct{}

	meshesBuilt int
	closed      bool
}

// Options configures a Scheduler. Zero fields fall back to defaults.
type Options struct {
	Settings config.Settings
	Palette  *terrain.Palette
	Logger   *slog.Logger
}

// New creates a scheduler over idx.
func New(idx *world.Index, opts Options) *Scheduler {
	s := opts.Settings
	if s.ZoneRadius < 1 {
		s.ZoneRadius = 1
	}
	if s.Workers < 1 {
		s.Workers = 1
	}
	if s.DrainInterval <= 0 {
		s.DrainInterval = config.GetDrainInterval()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	ring := (2*s.ZoneRadius + 1) * (2*s.ZoneRadius + 1)
	perZone := world.ChunksPerZone * world.ChunksPerZone
	return &Scheduler{
		idx:        idx,
		painter:    terrain.NewPainter(opts.Palette, s),
		pool:       pond.NewPool(s.Workers),
		log:        log.With("component", "expansion"),
		radius:     s.ZoneRadius,
		limiter:    rate.NewLimiter(rate.Every(s.DrainInterval), 1),
		clock:      time.Unix(0, 0),
		filled:     make(chan *world.Chunk, 2*ring*perZone),
		zones:      make(chan world.Key, 2*ring),
		meshes:     make(chan meshing.ChunkMesh, 4*ring*perZone),
		generated:  make(map[world.Key]struct{}),
		generating: make(map[world.Key]struct{}),
		visible:    make(map[world.Key]struct{}),
	}
}

// Index returns the chunk index the scheduler writes to.
func (s *Scheduler) Index() *world.Index {
	return s.idx
}

// Tick advances the scheduler's clock by dt and, at most once per drain
// interval, expands around pos and drains finished work. It reports whether
// work ran this tick.
func (s *Scheduler) Tick(pos, prev mgl32.Vec3, dt time.Duration) bool {
	s.clock = s.clock.Add(dt)
	if s.closed || !s.limiter.AllowN(s.clock, 1) {
		return false
	}
	if zoneOf(pos) != zoneOf(prev) {
		px, pz := zoneOf(prev).XZ()
		cx, cz := zoneOf(pos).XZ()
		s.log.Debug("focus changed zone", "from_x", px, "from_z", pz, "to_x", cx, "to_z", cz)
	}
	s.Expand(pos)
	s.Drain()
	return true
}

func zoneOf(p mgl32.Vec3) world.Key {
	x, _, z := world.BlockCoords(p)
	return world.ZoneKey(x, z)
}

// Expand recomputes the visible ring around pos. Zones leaving the ring drop
// their meshes, painted zones entering it are re-meshed and unpainted zones
// are instantiated and queued for painting.
func (s *Scheduler) Expand(pos mgl32.Vec3) {
	defer profiling.Track("expansion.Expand")()
	if s.closed {
		return
	}
	zx, zz := zoneOf(pos).XZ()
	ring := world.ZoneRing(zx, zz, s.radius)

	for _, k := range sortedKeys(s.visible) {
		if _, ok := ring[k]; ok {
			continue
		}
		delete(s.visible, k)
		s.forZoneChunks(k, func(c *world.Chunk) { c.Destroy() })
	}

	for _, k := range sortedKeys(ring) {
		if _, ok := s.visible[k]; ok {
			continue
		}
		st := s.ZoneState(k)
		s.visible[k] = struct{}{}
		switch st {
		case ZoneInvisible, ZoneGenerating:
			s.forZoneChunks(k, s.submitMesh)
		case ZoneUngenerated:
			s.submitPaint(k)
		}
	}
}

func sortedKeys(m map[world.Key]struct{}) []world.Key {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func (s *Scheduler) forZoneChunks(zone world.Key, fn func(*world.Chunk)) {
	zx, zz := zone.XZ()
	for _, corner := range world.ZoneChunks(zx, zz) {
		if c, err := s.idx.ChunkAt(corner[0], corner[1]); err == nil {
			fn(c)
		}
	}
}

func (s *Scheduler) submitPaint(zone world.Key) {
	zx, zz := zone.XZ()
	for _, corner := range world.ZoneChunks(zx, zz) {
		s.idx.InstantiateChunk(corner[0], corner[1])
	}
	s.generating[zone] = struct{}{}
	s.log.Debug("zone queued", "x", zx, "z", zz)

	sink := resultSink{filled: s.filled, zones: s.zones}
	s.inflight.Add(1)
	s.pool.Submit(func() {
		defer s.inflight.Done()
		s.painter.PaintZone(s.idx, zx, zz, sink)
	})
}

func (s *Scheduler) submitMesh(c *world.Chunk) {
	if !c.Filled() {
		return
	}
	s.inflight.Add(1)
	s.pool.Submit(func() {
		defer s.inflight.Done()
		s.meshes <- meshing.Build(s.idx, c)
	})
}

// Drain consumes every finished result without blocking: filled chunks of
// visible zones are queued for meshing, painted zones are recorded and
// built meshes are committed. It returns the number of mesh tasks
// submitted.
func (s *Scheduler) Drain() int {
	defer profiling.Track("expansion.Drain")()
	s.collectFilled()
	submitted := 0
	for _, c := range s.pending {
		if _, ok := s.visible[world.ZoneKey(c.X, c.Z)]; ok && !s.closed {
			s.submitMesh(c)
			submitted++
		}
	}
	s.pending = s.pending[:0]

	zones := s.collectZones()
	committed := s.collectMeshes()
	if zones > 0 || committed > 0 || submitted > 0 {
		s.log.Debug("drained", "zones", zones, "meshes_committed", committed, "meshes_submitted", submitted)
	}
	return submitted
}

func (s *Scheduler) collectFilled() {
	for {
		select {
		case c := <-s.filled:
			s.pending = append(s.pending, c)
		default:
			return
		}
	}
}

func (s *Scheduler) collectZones() int {
	n := 0
	for {
		select {
		case k := <-s.zones:
			s.recordZone(k)
			n++
		default:
			return n
		}
	}
}

func (s *Scheduler) collectMeshes() int {
	n := 0
	for {
		select {
		case m := <-s.meshes:
			s.commit(m)
			n++
		default:
			return n
		}
	}
}

func (s *Scheduler) recordZone(k world.Key) {
	delete(s.generating, k)
	s.generated[k] = struct{}{}
}

func (s *Scheduler) commit(m meshing.ChunkMesh) {
	c := s.idx.Lookup(m.Key)
	if c == nil {
		return
	}
	// A zone may have left the ring while the mesh was being built.
	if _, ok := s.visible[world.ZoneKey(c.X, c.Z)]; !ok {
		return
	}
	c.Upload(m.Opaque, m.Transparent)
	s.meshesBuilt++
}

// quiesce blocks until no task is in flight, consuming results meanwhile
// so no worker stays blocked on a full channel.
func (s *Scheduler) quiesce() {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			// Workers have exited; pick up whatever they left queued.
			s.collectFilled()
			s.collectZones()
			s.collectMeshes()
			return
		case c := <-s.filled:
			s.pending = append(s.pending, c)
		case k := <-s.zones:
			s.recordZone(k)
		case m := <-s.meshes:
			s.commit(m)
		}
	}
}

// Settle waits until every queued paint and mesh task has finished and its
// result has been committed.
func (s *Scheduler) Settle() {
	for {
		s.quiesce()
		if s.Drain() == 0 {
			return
		}
	}
}

// Bootstrap generates and meshes the full ring around center and waits for
// it to become drawable.
func (s *Scheduler) Bootstrap(center mgl32.Vec3) {
	defer profiling.Track("expansion.Bootstrap")()
	s.Expand(center)
	s.Settle()
	st := s.Stats()
	s.log.Info("bootstrap complete", "zones", st.ZonesGenerated, "chunks_ready", st.ChunksReady)
}

// RemeshSync rebuilds the mesh of c on the pool and commits it before
// returning. It does nothing after Close.
func (s *Scheduler) RemeshSync(c *world.Chunk) {
	if s.closed {
		return
	}
	s.quiesce()
	s.remesh(c)
}

func (s *Scheduler) remesh(c *world.Chunk) {
	defer profiling.Track("expansion.RemeshSync")()
	c.Destroy()
	var m meshing.ChunkMesh
	task := s.pool.Submit(func() {
		m = meshing.Build(s.idx, c)
	})
	if err := task.Wait(); err != nil {
		s.log.Error("remesh failed", "x", c.X, "z", c.Z, "error", err)
		return
	}
	s.commit(m)
}

// SetBlock writes a block in world coordinates and re-meshes the affected
// chunk, plus the neighbor sharing the edited face when the block sits on a
// chunk border. It returns ErrClosed after Close.
func (s *Scheduler) SetBlock(x, y, z int, t world.BlockType) error {
	if s.closed {
		return ErrClosed
	}
	s.quiesce()
	if err := s.idx.SetBlockAt(x, y, z, t); err != nil {
		return err
	}
	c := s.idx.MustChunkAt(x, z)
	s.remesh(c)

	lx, lz := x-c.X, z-c.Z
	var dirs []world.Direction
	switch lx {
	case 0:
		dirs = append(dirs, world.XNeg)
	case world.ChunkSizeX - 1:
		dirs = append(dirs, world.XPos)
	}
	switch lz {
	case 0:
		dirs = append(dirs, world.ZNeg)
	case world.ChunkSizeZ - 1:
		dirs = append(dirs, world.ZPos)
	}
	for _, d := range dirs {
		if nb := s.idx.Neighbor(c, d); nb != nil && nb.Filled() {
			s.remesh(nb)
		}
	}
	return nil
}

// CarveRiver cuts a river starting at (x, z) into painted terrain and
// re-meshes the visible chunks it touched. It returns the touched keys.
func (s *Scheduler) CarveRiver(x, z int, heading float32, seed int64) []world.Key {
	if s.closed {
		return nil
	}
	s.quiesce()
	keys := terrain.NewRiver(s.idx, s.painter.Palette()).Carve(x, z, heading, seed)
	for _, k := range keys {
		c := s.idx.Lookup(k)
		if _, ok := s.visible[world.ZoneKey(c.X, c.Z)]; ok {
			s.remesh(c)
		}
	}
	s.log.Debug("river carved", "x", x, "z", z, "chunks", len(keys))
	return keys
}

// ZoneState reports the lifecycle stage of a zone. Any key inside the zone
// is accepted.
func (s *Scheduler) ZoneState(zone world.Key) ZoneState {
	zx, zz := zone.XZ()
	zone = world.ZoneKey(zx, zz)
	if _, ok := s.generating[zone]; ok {
		return ZoneGenerating
	}
	if _, ok := s.generated[zone]; !ok {
		return ZoneUngenerated
	}
	if _, ok := s.visible[zone]; ok {
		return ZoneVisible
	}
	return ZoneInvisible
}

// Stats summarizes the scheduler and pool state.
func (s *Scheduler) Stats() Stats {
	st := Stats{
		ZonesGenerated: len(s.generated),
		ZonesInFlight:  len(s.generating),
		ZonesVisible:   len(s.visible),
		Chunks:         s.idx.Len(),
		MeshesBuilt:    s.meshesBuilt,
		TasksWaiting:   s.pool.WaitingTasks(),
		TasksRunning:   s.pool.RunningWorkers(),
	}
	for _, c := range s.idx.Chunks() {
		if c.Ready() {
			st.ChunksReady++
		}
	}
	return st
}

// Close waits for in-flight work and stops the worker pool. The scheduler
// does nothing after Close.
func (s *Scheduler) Close() {
	if s.closed {
		return
	}
	s.quiesce()
	s.closed = true
	s.pool.StopAndWait()
}
