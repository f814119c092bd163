//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

// Direct syscalls instead of github.com/atotto/clipboard: the ebiten
// window keeps its own message loop on this platform and the dependency's
// OpenClipboard call intermittently lost the race against it.
var (
	user32   = syscall.NewLazyDLL("user32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procSetClipboardData = user32.NewProc("SetClipboardData")
	procGlobalAlloc      = kernel32.NewProc("GlobalAlloc")
	procGlobalLock       = kernel32.NewProc("GlobalLock")
	procGlobalUnlock     = kernel32.NewProc("GlobalUnlock")
)

const (
	gmemMoveable  = 0x0002
	cfUnicodeText = 13
)

// copyReport places the latest progress report on the system clipboard.
func copyReport(text string) error {
	if text == "" {
		text = " "
	}

	u16, err := syscall.UTF16FromString(text)
	if err != nil {
		return err
	}
	size := uintptr(len(u16) * 2)

	r1, _, err := procOpenClipboard.Call(0)
	if r1 == 0 {
		return err
	}
	defer procCloseClipboard.Call()

	procEmptyClipboard.Call()

	h, _, err := procGlobalAlloc.Call(gmemMoveable, size)
	if h == 0 {
		return err
	}

	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		return err
	}

	mem := unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
	copy(mem, unsafe.Slice((*byte)(unsafe.Pointer(&u16[0])), size))

	procGlobalUnlock.Call(h)

	r1, _, err = procSetClipboardData.Call(cfUnicodeText, h)
	if r1 == 0 {
		return err
	}
	return nil
}
