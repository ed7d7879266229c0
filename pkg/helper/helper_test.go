package helper

import "testing"

func TestGetFuncName(t *testing.T) {
	got := GetFuncName()
	if got != "helper.TestGetFuncName" {
		t.Errorf("GetFuncName() = %q, want %q", got, "helper.TestGetFuncName")
	}
}
