package pos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_List_Empty(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestService_CreateThenList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemoryRepo())
	reqs := sampleRequests()

	created, err := svc.Create(ctx, reqs)
	require.NoError(t, err)
	require.Len(t, created, len(reqs))
	for _, p := range created {
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	}

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, len(reqs))
	assert.ElementsMatch(t, expectedFrom(reqs), withoutServerFields(listed))
	assert.Equal(t, expectedFrom(reqs), withoutServerFields(listed), "insertion order")
}

func TestService_Create_RejectsClientID(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	req := sampleRequests()[0]
	id := uuid.New()
	req.ID = &id

	_, err := svc.Create(context.Background(), []PosRequest{req})
	assert.ErrorIs(t, err, ErrIDOnCreate)
}

func TestService_Create_EmptyBatch(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestService_Create_ValidationSingle(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	req := sampleRequests()[0]
	req.Name = ""
	req.Type = "NOPE"
	req.PostalCode = 0

	_, err := svc.Create(context.Background(), []PosRequest{req})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Contains(t, verr.Fields["type"], "CAFE")
	assert.Equal(t, "is required", verr.Fields["postalCode"])
	assert.NotContains(t, verr.Fields, "campus")
}

func TestService_Create_ValidationBatchIsAllOrNothing(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(t, repo)
	reqs := sampleRequests()
	reqs[1].Campus = "NOPE"

	_, err := svc.Create(context.Background(), reqs)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "[1].campus")

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestService_Create_AcceptsCoffeeOnMainCampus(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	req := PosRequest{
		Name: "Café A", Type: TypeCoffee, Campus: CampusMain,
		Street: "Main St", HouseNumber: "1", PostalCode: 12345, City: "Springfield",
	}

	created, err := svc.Create(context.Background(), []PosRequest{req})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, TypeCoffee, created[0].Type)
	assert.Equal(t, CampusMain, created[0].Campus)
}

func TestService_Create_BlankStringsRejected(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	req := sampleRequests()[0]
	req.Name = "   "
	req.Street = "\t"
	req.City = ""

	_, err := svc.Create(context.Background(), []PosRequest{req})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must not be blank", verr.Fields["name"])
	assert.Equal(t, "must not be blank", verr.Fields["street"])
	assert.Equal(t, "is required", verr.Fields["city"])
	assert.NotContains(t, verr.Fields, "houseNumber")
}

func TestService_Create_DuplicateNameInBatch(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	reqs := sampleRequests()
	reqs[2].Name = reqs[0].Name

	_, err := svc.Create(context.Background(), reqs)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Create_DuplicateNameStored(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemoryRepo())
	_, err := svc.Create(ctx, sampleRequests()[:1])
	require.NoError(t, err)

	_, err = svc.Create(ctx, sampleRequests()[:1])
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Update_ChangesOnlyDescription(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemoryRepo())
	created, err := svc.Create(ctx, sampleRequests())
	require.NoError(t, err)
	original := created[0]

	req := sampleRequests()[0]
	req.ID = &original.ID
	req.Description = "New desc"

	updated, err := svc.Update(ctx, original.ID, req)
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "New desc", updated.Description)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(original.UpdatedAt))

	found, err := svc.GetByName(ctx, original.Name)
	require.NoError(t, err)
	assert.Equal(t, "New desc", found.Description)

	want := *original
	want.Description = "New desc"
	got := withoutServerFields([]*Pos{found})[0]
	assert.Equal(t, withoutServerFields([]*Pos{&want})[0], got)

	// the other records are untouched
	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expectedFrom(sampleRequests())[1:], withoutServerFields(listed)[1:])
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())

	_, err := svc.Update(context.Background(), uuid.New(), sampleRequests()[0])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_IDMismatch(t *testing.T) {
	svc := newTestService(t, newMemoryRepo())
	req := sampleRequests()[0]
	other := uuid.New()
	req.ID = &other

	_, err := svc.Update(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrIDMismatch)
}

func TestService_Update_RenameOntoExistingName(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemoryRepo())
	created, err := svc.Create(ctx, sampleRequests())
	require.NoError(t, err)

	req := sampleRequests()[1]
	req.Name = created[0].Name

	_, err = svc.Update(ctx, created[1].ID, req)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemoryRepo())
	created, err := svc.Create(ctx, sampleRequests())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created[2].ID)
	require.NoError(t, err)
	assert.Equal(t, created[2].Name, got.Name)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemoryRepo())
	_, err := svc.Create(ctx, sampleRequests())
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
