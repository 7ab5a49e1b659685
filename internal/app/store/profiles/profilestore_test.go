package profilestore_test

import (
	"testing"

	profilestore "github.com/bmitrev/campusfolio/internal/app/store/profiles"
	"github.com/bmitrev/campusfolio/internal/domain/models"
	"github.com/bmitrev/campusfolio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := models.UserProfile{
		SubjectID:  "firebase-uid-1",
		Email:      "Student@UKIM.edu.mk",
		University: "Ss. Cyril and Methodius University",
	}

	created, err := store.Create(ctx, p)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "student@ukim.edu.mk" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_DuplicateSubject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := models.UserProfile{
		SubjectID:  "firebase-uid-1",
		Email:      "a@ukim.edu.mk",
		University: "Ss. Cyril and Methodius University",
	}

	if _, err := store.Create(ctx, p); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	p.Email = "b@ukim.edu.mk"
	if _, err := store.Create(ctx, p); err != profilestore.ErrDuplicateProfile {
		t.Fatalf("expected ErrDuplicateProfile, got %v", err)
	}
}

func TestStore_GetBySubject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateProfile(ctx, "firebase-uid-1", "a@ukim.edu.mk", "Ss. Cyril and Methodius University")

	got, err := store.GetBySubject(ctx, "firebase-uid-1")
	if err != nil {
		t.Fatalf("GetBySubject failed: %v", err)
	}
	if got.University != "Ss. Cyril and Methodius University" {
		t.Errorf("unexpected university %q", got.University)
	}

	if _, err := store.GetBySubject(ctx, "missing"); err != profilestore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ExistsBySubject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateProfile(ctx, "firebase-uid-1", "a@ukim.edu.mk", "Ss. Cyril and Methodius University")

	ok, err := store.ExistsBySubject(ctx, "firebase-uid-1")
	if err != nil {
		t.Fatalf("ExistsBySubject failed: %v", err)
	}
	if !ok {
		t.Error("expected profile to exist")
	}

	ok, err = store.ExistsBySubject(ctx, "other")
	if err != nil {
		t.Fatalf("ExistsBySubject failed: %v", err)
	}
	if ok {
		t.Error("expected missing subject to not exist")
	}
}
