package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Meerasha8/GeoMeet-Backend/internal/domain/models"
)

func TestRoomRepositoryAddAndPasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	open := models.NewRoom(nil)
	protected := models.NewRoom([]byte("hash"))

	repo.Add(ctx, open)
	repo.Add(ctx, protected)

	if hash, exists := repo.PasswordHash(ctx, open.ID); !exists || hash != nil {
		t.Errorf("open room: got hash=%q exists=%v, want nil hash and exists", hash, exists)
	}

	if hash, exists := repo.PasswordHash(ctx, protected.ID); !exists || string(hash) != "hash" {
		t.Errorf("protected room: got hash=%q exists=%v", hash, exists)
	}

	if _, exists := repo.PasswordHash(ctx, "missing"); exists {
		t.Error("missing room reported as existing")
	}

	if got := repo.Count(ctx); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestRoomRepositoryPutMemberOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	room := models.NewRoom(nil)
	repo.Add(ctx, room)

	if err := repo.PutMember(ctx, room.ID, models.Member{ID: "u1", Name: "Ann"}); err != nil {
		t.Fatalf("PutMember() error = %v", err)
	}

	if err := repo.SetLocation(ctx, room.ID, "u1", models.Location{Lat: 1, Lon: 2}, time.Now()); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}

	// Re-join replaces the whole entry, so the location goes back to absent.
	if err := repo.PutMember(ctx, room.ID, models.Member{ID: "u1", Name: "Ann"}); err != nil {
		t.Fatalf("PutMember() error = %v", err)
	}

	members, err := repo.Members(ctx, room.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}

	if len(members) != 1 {
		t.Fatalf("got %d members, want 1", len(members))
	}

	if members[0].Location != nil || members[0].UpdatedAt != nil {
		t.Errorf("re-joined member kept location %+v", members[0])
	}
}

func TestRoomRepositoryPutMemberRoomNotFound(t *testing.T) {
	repo := NewRoomRepository()

	err := repo.PutMember(context.Background(), "missing", models.Member{ID: "u1", Name: "Ann"})
	if err != models.ErrRoomNotFound {
		t.Errorf("PutMember() error = %v, want ErrRoomNotFound", err)
	}
}

func TestRoomRepositorySetLocation(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	room := models.NewRoom(nil)
	repo.Add(ctx, room)

	if err := repo.SetLocation(ctx, "missing", "u1", models.Location{}, time.Now()); err != models.ErrRoomNotFound {
		t.Errorf("unknown room: error = %v, want ErrRoomNotFound", err)
	}

	if err := repo.SetLocation(ctx, room.ID, "u1", models.Location{}, time.Now()); err != models.ErrMemberNotFound {
		t.Errorf("unknown member: error = %v, want ErrMemberNotFound", err)
	}

	if err := repo.PutMember(ctx, room.ID, models.Member{ID: "u1", Name: "Ann"}); err != nil {
		t.Fatalf("PutMember() error = %v", err)
	}

	at := time.Now()
	if err := repo.SetLocation(ctx, room.ID, "u1", models.Location{Lat: 1.0, Lon: 2.0}, at); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}

	members, err := repo.Members(ctx, room.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}

	member := members[0]
	if member.Location == nil || member.Location.Lat != 1.0 || member.Location.Lon != 2.0 {
		t.Errorf("location = %+v, want lat=1 lon=2", member.Location)
	}
	if member.UpdatedAt == nil || !member.UpdatedAt.Equal(at) {
		t.Errorf("updated_at = %v, want %v", member.UpdatedAt, at)
	}
}

func TestRoomRepositoryMembersSnapshotIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	room := models.NewRoom(nil)
	repo.Add(ctx, room)

	if err := repo.PutMember(ctx, room.ID, models.Member{ID: "u1", Name: "Ann"}); err != nil {
		t.Fatalf("PutMember() error = %v", err)
	}
	if err := repo.SetLocation(ctx, room.ID, "u1", models.Location{Lat: 1, Lon: 2}, time.Now()); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}

	before, err := repo.Members(ctx, room.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}

	// A later push must not mutate an already-taken snapshot.
	if err := repo.SetLocation(ctx, room.ID, "u1", models.Location{Lat: 9, Lon: 9}, time.Now()); err != nil {
		t.Fatalf("SetLocation() error = %v", err)
	}

	if before[0].Location.Lat != 1 || before[0].Location.Lon != 2 {
		t.Errorf("snapshot mutated by later push: %+v", before[0].Location)
	}
}

func TestRoomRepositoryMembersSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	room := models.NewRoom(nil)
	repo.Add(ctx, room)

	for _, id := range []string{"u3", "u1", "u2"} {
		if err := repo.PutMember(ctx, room.ID, models.Member{ID: id, Name: id}); err != nil {
			t.Fatalf("PutMember(%q) error = %v", id, err)
		}
	}

	members, err := repo.Members(ctx, room.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}

	for i, want := range []string{"u1", "u2", "u3"} {
		if members[i].ID != want {
			t.Errorf("members[%d].ID = %q, want %q", i, members[i].ID, want)
		}
	}
}

func TestRoomRepositoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepository()

	room := models.NewRoom(nil)
	repo.Add(ctx, room)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			id := string(rune('a' + n%26))
			if err := repo.PutMember(ctx, room.ID, models.Member{ID: id, Name: id}); err != nil {
				t.Errorf("PutMember() error = %v", err)
				return
			}

			if err := repo.SetLocation(ctx, room.ID, id, models.Location{Lat: float64(n)}, time.Now()); err != nil {
				t.Errorf("SetLocation() error = %v", err)
			}

			if _, err := repo.Members(ctx, room.ID); err != nil {
				t.Errorf("Members() error = %v", err)
			}
		}(i)
	}

	wg.Wait()

	members, err := repo.Members(ctx, room.ID)
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}

	if len(members) != 26 {
		t.Errorf("got %d members, want 26", len(members))
	}

	for _, member := range members {
		if (member.Location == nil) != (member.UpdatedAt == nil) {
			t.Errorf("member %q has inconsistent location/timestamp pair", member.ID)
		}
	}
}
