//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for use case tests. It keeps
// the database constraints the use cases rely on (unique national id, unique
// room number, one active stay per room, guest references) and rolls back a
// failed Within.
package memuow

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/guest"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/infra"
	"mansion-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OpGuestCreate       = "Guests.Create"
	OpGuestUpdate       = "Guests.Update"
	OpGuestDelete       = "Guests.Delete"
	OpRoomCreate        = "Rooms.Create"
	OpRoomUpdateStatus  = "Rooms.UpdateStatus"
	OpStayCreate        = "Stays.Create"
	OpStayClose         = "Stays.Close"
	OpDepositCreate     = "Deposits.Create"
	OpDepositReturn     = "Deposits.MarkReturned"
	OpPaymentAppend     = "Payments.Append"
	OpGuestFindByNID    = "Guests.FindByNationalID"
	OpRoomFindForUpdate = "Rooms.FindByIDForUpdate"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type guestRow struct {
	id         uuid.UUID
	first      string
	last       string
	nationalID string
	phone      *string
	address    *string
	createdAt  time.Time
	updatedAt  time.Time
}

type roomRow struct {
	id        uuid.UUID
	number    string
	bedType   room.BedType
	rate      decimal.Decimal
	status    room.Status
	createdAt time.Time
	updatedAt time.Time
}

type stayRow struct {
	id          uuid.UUID
	guestID     uuid.UUID
	roomID      uuid.UUID
	checkIn     time.Time
	checkOut    *time.Time
	plannedDays int
	status      stay.Status
	createdAt   time.Time
}

type depositRow struct {
	id         uuid.UUID
	stayID     uuid.UUID
	amount     decimal.Decimal
	status     deposit.Status
	paidAt     time.Time
	returnedAt *time.Time
}

type paymentRow struct {
	id     uuid.UUID
	stayID uuid.UUID
	amount decimal.Decimal
	typ    payment.Type
	method payment.Method
	paidAt time.Time
}

type state struct {
	guests   map[uuid.UUID]guestRow
	rooms    map[uuid.UUID]roomRow
	stays    map[uuid.UUID]stayRow
	deposits map[uuid.UUID]depositRow
	payments []paymentRow
}

func (s state) clone() state {
	c := state{
		guests:   make(map[uuid.UUID]guestRow, len(s.guests)),
		rooms:    make(map[uuid.UUID]roomRow, len(s.rooms)),
		stays:    make(map[uuid.UUID]stayRow, len(s.stays)),
		deposits: make(map[uuid.UUID]depositRow, len(s.deposits)),
		payments: append([]paymentRow(nil), s.payments...),
	}
	for k, v := range s.guests {
		c.guests[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.stays {
		c.stays[k] = v
	}
	for k, v := range s.deposits {
		c.deposits[k] = v
	}
	return c
}

// Store serializes every unit of work behind one mutex, which gives the same
// outcome as the row locks taken by the Postgres implementation.
type Store struct {
	mu     sync.Mutex
	st     state
	failOn map[string]error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		st: state{
			guests:   map[uuid.UUID]guestRow{},
			rooms:    map[uuid.UUID]roomRow{},
			stays:    map[uuid.UUID]stayRow{},
			deposits: map[uuid.UUID]depositRow{},
		},
		failOn: map[string]error{},
	}
}

// FailOn makes every later call of op fail with a DB_FAILURE wrapping err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn[op] = err
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	err := fn(ctx, &memTx{s: s})
	s.st = snapshot
	return err
}

// WithDB applies each statement immediately; nothing is rolled back.
func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(ctx, &memTx{s: s})
}

func (s *Store) fail(op string) error {
	if err, ok := s.failOn[op]; ok {
		return infra.WrapRepoErr(discard, infra.KindDBFailure, op, err)
	}
	return nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(discard, infra.KindNotFound, msg, nil)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(discard, infra.KindDuplicateKey, msg, nil)
}

func foreignKey(msg string) error {
	return infra.WrapRepoErr(discard, infra.KindForeignKeyViolated, msg, nil)
}

type memTx struct {
	s *Store
}

func (t *memTx) Guests() shared.GuestRepository     { return guestRepo{t.s} }
func (t *memTx) Rooms() shared.RoomRepository       { return roomRepo{t.s} }
func (t *memTx) Stays() shared.StayRepository       { return stayRepo{t.s} }
func (t *memTx) Deposits() shared.DepositRepository { return depositRepo{t.s} }
func (t *memTx) Payments() shared.PaymentRepository { return paymentRepo{t.s} }

// guests

type guestRepo struct{ s *Store }

func toGuestRow(g *guest.Guest) guestRow {
	return guestRow{
		id:         g.ID(),
		first:      g.Name().First(),
		last:       g.Name().Last(),
		nationalID: g.NationalID().Value(),
		phone:      copyString(g.Phone()),
		address:    copyString(g.Address()),
		createdAt:  g.CreatedAt(),
		updatedAt:  g.UpdatedAt(),
	}
}

func (r guestRow) domain() *guest.Guest {
	return guest.ReconstructGuest(
		r.id,
		guest.ReconstructName(r.first, r.last),
		guest.ReconstructNationalID(r.nationalID),
		copyString(r.phone),
		copyString(r.address),
		r.createdAt,
		r.updatedAt,
	)
}

func (g guestRepo) FindByID(_ context.Context, id uuid.UUID) (*guest.Guest, error) {
	row, ok := g.s.st.guests[id]
	if !ok {
		return nil, notFound("guest not found")
	}
	return row.domain(), nil
}

func (g guestRepo) FindByNationalID(_ context.Context, nationalID guest.NationalID) (*guest.Guest, error) {
	if err := g.s.fail(OpGuestFindByNID); err != nil {
		return nil, err
	}
	for _, row := range g.s.st.guests {
		if row.nationalID == nationalID.Value() {
			return row.domain(), nil
		}
	}
	return nil, notFound("guest not found")
}

func (g guestRepo) nationalIDTaken(nid string, except uuid.UUID) bool {
	for id, row := range g.s.st.guests {
		if id != except && row.nationalID == nid {
			return true
		}
	}
	return false
}

func (g guestRepo) Create(_ context.Context, gu *guest.Guest) error {
	if err := g.s.fail(OpGuestCreate); err != nil {
		return err
	}
	if g.nationalIDTaken(gu.NationalID().Value(), uuid.Nil) {
		return duplicate("failed to create guest")
	}
	g.s.st.guests[gu.ID()] = toGuestRow(gu)
	return nil
}

func (g guestRepo) Update(_ context.Context, gu *guest.Guest) error {
	if err := g.s.fail(OpGuestUpdate); err != nil {
		return err
	}
	if _, ok := g.s.st.guests[gu.ID()]; !ok {
		return notFound("guest not found")
	}
	if g.nationalIDTaken(gu.NationalID().Value(), gu.ID()) {
		return duplicate("failed to update guest")
	}
	g.s.st.guests[gu.ID()] = toGuestRow(gu)
	return nil
}

func (g guestRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := g.s.fail(OpGuestDelete); err != nil {
		return err
	}
	if _, ok := g.s.st.guests[id]; !ok {
		return notFound("guest not found")
	}
	for _, st := range g.s.st.stays {
		if st.guestID == id {
			return foreignKey("failed to delete guest")
		}
	}
	delete(g.s.st.guests, id)
	return nil
}

func (g guestRepo) HasStays(_ context.Context, id uuid.UUID) (bool, error) {
	for _, st := range g.s.st.stays {
		if st.guestID == id {
			return true, nil
		}
	}
	return false, nil
}

// rooms

type roomRepo struct{ s *Store }

func toRoomRow(rm *room.Room) roomRow {
	return roomRow{
		id:        rm.ID(),
		number:    rm.Number(),
		bedType:   rm.BedType(),
		rate:      rm.DailyRate(),
		status:    rm.Status(),
		createdAt: rm.CreatedAt(),
		updatedAt: rm.UpdatedAt(),
	}
}

func (r roomRow) domain() *room.Room {
	return room.ReconstructRoom(r.id, r.number, r.bedType, r.rate, r.status, r.createdAt, r.updatedAt)
}

func (r roomRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*room.Room, error) {
	if err := r.s.fail(OpRoomFindForUpdate); err != nil {
		return nil, err
	}
	row, ok := r.s.st.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return row.domain(), nil
}

func (r roomRepo) Create(_ context.Context, rm *room.Room) error {
	if err := r.s.fail(OpRoomCreate); err != nil {
		return err
	}
	for _, row := range r.s.st.rooms {
		if row.number == rm.Number() {
			return duplicate("failed to create room")
		}
	}
	r.s.st.rooms[rm.ID()] = toRoomRow(rm)
	return nil
}

func (r roomRepo) UpdateStatus(_ context.Context, rm *room.Room) error {
	if err := r.s.fail(OpRoomUpdateStatus); err != nil {
		return err
	}
	row, ok := r.s.st.rooms[rm.ID()]
	if !ok {
		return notFound("room not found")
	}
	row.status = rm.Status()
	row.updatedAt = rm.UpdatedAt()
	r.s.st.rooms[rm.ID()] = row
	return nil
}

// stays

type stayRepo struct{ s *Store }

func (r stayRow) domain() *stay.Stay {
	var checkOut *time.Time
	if r.checkOut != nil {
		t := *r.checkOut
		checkOut = &t
	}
	return stay.ReconstructStay(
		r.id, r.guestID, r.roomID,
		r.checkIn,
		checkOut,
		stay.ReconstructPlannedDays(r.plannedDays),
		r.status,
		r.createdAt,
	)
}

func (r stayRepo) Create(_ context.Context, st *stay.Stay) error {
	if err := r.s.fail(OpStayCreate); err != nil {
		return err
	}
	if _, ok := r.s.st.guests[st.GuestID()]; !ok {
		return foreignKey("failed to create stay")
	}
	if _, ok := r.s.st.rooms[st.RoomID()]; !ok {
		return foreignKey("failed to create stay")
	}
	for _, row := range r.s.st.stays {
		if row.roomID == st.RoomID() && row.status == stay.StatusCheckedIn {
			return duplicate("failed to create stay")
		}
	}
	r.s.st.stays[st.ID()] = stayRow{
		id:          st.ID(),
		guestID:     st.GuestID(),
		roomID:      st.RoomID(),
		checkIn:     st.CheckIn(),
		plannedDays: st.PlannedDays().Int(),
		status:      st.Status(),
		createdAt:   st.CreatedAt(),
	}
	return nil
}

func (r stayRepo) FindActiveByIDForUpdate(_ context.Context, id uuid.UUID) (*stay.Stay, error) {
	row, ok := r.s.st.stays[id]
	if !ok || row.status != stay.StatusCheckedIn {
		return nil, notFound("active stay not found")
	}
	return row.domain(), nil
}

func (r stayRepo) Close(_ context.Context, st *stay.Stay) error {
	if err := r.s.fail(OpStayClose); err != nil {
		return err
	}
	row, ok := r.s.st.stays[st.ID()]
	if !ok || row.status != stay.StatusCheckedIn {
		return notFound("active stay not found")
	}
	if st.CheckOut() != nil {
		t := *st.CheckOut()
		row.checkOut = &t
	}
	row.status = st.Status()
	r.s.st.stays[st.ID()] = row
	return nil
}

// deposits

type depositRepo struct{ s *Store }

func (r depositRow) domain() *deposit.Deposit {
	var returnedAt *time.Time
	if r.returnedAt != nil {
		t := *r.returnedAt
		returnedAt = &t
	}
	return deposit.ReconstructDeposit(r.id, r.stayID, r.amount, r.status, r.paidAt, returnedAt)
}

func (r depositRepo) Create(_ context.Context, d *deposit.Deposit) error {
	if err := r.s.fail(OpDepositCreate); err != nil {
		return err
	}
	if _, ok := r.s.st.stays[d.StayID()]; !ok {
		return foreignKey("failed to create deposit")
	}
	for _, row := range r.s.st.deposits {
		if row.stayID == d.StayID() {
			return duplicate("failed to create deposit")
		}
	}
	r.s.st.deposits[d.ID()] = depositRow{
		id:     d.ID(),
		stayID: d.StayID(),
		amount: d.Amount(),
		status: d.Status(),
		paidAt: d.PaidAt(),
	}
	return nil
}

func (r depositRepo) FindByStayIDForUpdate(_ context.Context, stayID uuid.UUID) (*deposit.Deposit, error) {
	for _, row := range r.s.st.deposits {
		if row.stayID == stayID {
			return row.domain(), nil
		}
	}
	return nil, notFound("deposit not found")
}

func (r depositRepo) MarkReturned(_ context.Context, d *deposit.Deposit) error {
	if err := r.s.fail(OpDepositReturn); err != nil {
		return err
	}
	row, ok := r.s.st.deposits[d.ID()]
	if !ok || row.status == deposit.StatusReturned {
		return notFound("unreturned deposit not found")
	}
	row.status = deposit.StatusReturned
	if d.ReturnedAt() != nil {
		t := *d.ReturnedAt()
		row.returnedAt = &t
	}
	r.s.st.deposits[d.ID()] = row
	return nil
}

// payments

type paymentRepo struct{ s *Store }

func (r paymentRepo) Append(_ context.Context, p *payment.Payment) error {
	if err := r.s.fail(OpPaymentAppend); err != nil {
		return err
	}
	if _, ok := r.s.st.stays[p.StayID()]; !ok {
		return foreignKey("failed to append payment")
	}
	r.s.st.payments = append(r.s.st.payments, paymentRow{
		id:     p.ID(),
		stayID: p.StayID(),
		amount: p.Amount(),
		typ:    p.Type(),
		method: p.Method(),
		paidAt: p.PaidAt(),
	})
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// seeding and inspection

func (s *Store) SeedGuest(g *guest.Guest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.guests[g.ID()] = toGuestRow(g)
}

func (s *Store) SeedRoom(rm *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.rooms[rm.ID()] = toRoomRow(rm)
}

func (s *Store) Guest(id uuid.UUID) (*guest.Guest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.guests[id]
	if !ok {
		return nil, false
	}
	return row.domain(), true
}

func (s *Store) Room(id uuid.UUID) *room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.rooms[id]
	if !ok {
		return nil
	}
	return row.domain()
}

func (s *Store) Stay(id uuid.UUID) *stay.Stay {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.stays[id]
	if !ok {
		return nil
	}
	return row.domain()
}

func (s *Store) DepositForStay(stayID uuid.UUID) *deposit.Deposit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.st.deposits {
		if row.stayID == stayID {
			return row.domain()
		}
	}
	return nil
}

// Payments returns the ledger entries of a stay in insertion order.
func (s *Store) Payments(stayID uuid.UUID) []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*payment.Payment
	for _, row := range s.st.payments {
		if row.stayID == stayID {
			out = append(out, payment.ReconstructPayment(row.id, row.stayID, row.amount, row.typ, row.method, row.paidAt))
		}
	}
	return out
}

// PaymentTypes lists the ledger entry types of a stay, sorted.
func (s *Store) PaymentTypes(stayID uuid.UUID) []payment.Type {
	var types []payment.Type
	for _, p := range s.Payments(stayID) {
		types = append(types, p.Type())
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

type Counts struct {
	Guests   int
	Rooms    int
	Stays    int
	Deposits int
	Payments int
}

func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		Guests:   len(s.st.guests),
		Rooms:    len(s.st.rooms),
		Stays:    len(s.st.stays),
		Deposits: len(s.st.deposits),
		Payments: len(s.st.payments),
	}
}
