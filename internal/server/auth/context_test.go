package auth

import (
	"context"
	"testing"
)

func TestUserIDContext(t *testing.T) {
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry a user id")
	}

	ctx := WithUserID(context.Background(), "t1")
	id, ok := UserIDFromContext(ctx)
	if !ok || id != "t1" {
		t.Fatalf("got %q, %v", id, ok)
	}

	if _, ok := UserIDFromContext(WithUserID(context.Background(), "")); ok {
		t.Fatal("blank user id must be rejected")
	}
}
