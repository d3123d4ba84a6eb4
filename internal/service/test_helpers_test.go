package service

import (
	"testing"

	"project-registration-server/internal/model"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/testutils"

	"github.com/google/uuid"
)

func setupTestService(t *testing.T) (*Service, *repository.Repositories) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(gdb)
	return NewService(repos), repos
}

func mustRegister(t *testing.T, svc *Service, username string) *model.User {
	t.Helper()
	user, err := svc.Register(username, "password123")
	if err != nil {
		t.Fatalf("Register(%s): %v", username, err)
	}
	return user
}

func sampleDraft(suffix string) PersonDraft {
	return PersonDraft{
		FirstName:    "Jonas",
		LastName:     "Jonaitis",
		PersonalCode: "3900101" + suffix,
		PhoneNumber:  "+3706000" + suffix,
		Email:        "jonas" + suffix + "@example.com",
		Address: AddressDraft{
			City:        "Vilnius",
			Street:      "Gedimino pr.",
			HouseNumber: "1",
		},
	}
}

// mustAddPerson 注册用户并写入个人信息，返回用户与个人信息 ID。
func mustAddPerson(t *testing.T, svc *Service, username, suffix string, picture *PictureUpload) (*model.User, uuid.UUID) {
	t.Helper()
	user := mustRegister(t, svc, username)
	ok, err := svc.AddPersonInfo(user.ID, sampleDraft(suffix), picture)
	if err != nil || !ok {
		t.Fatalf("AddPersonInfo: ok=%v err=%v", ok, err)
	}
	personID, err := svc.PersonIDByUserID(user.ID)
	if err != nil {
		t.Fatalf("PersonIDByUserID: %v", err)
	}
	return user, personID
}

func pngUpload(t *testing.T, w, h int) *PictureUpload {
	t.Helper()
	return &PictureUpload{FileName: "avatar.png", ContentType: "image/png", Data: testutils.EncodePNG(t, w, h)}
}
