// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
//

// Package profile_test is a generated GoMock package.
package profile_test

import (
	context "context"
	reflect "reflect"
	entities "service/internal/entities"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// AddPickupID mocks base method.
func (m *MockRepository) AddPickupID(ctx context.Context, uid, pickupID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddPickupID", ctx, uid, pickupID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddPickupID indicates an expected call of AddPickupID.
func (mr *MockRepositoryMockRecorder) AddPickupID(ctx, uid, pickupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddPickupID", reflect.TypeOf((*MockRepository)(nil).AddPickupID), ctx, uid, pickupID)
}

// ApplyStatsDelta mocks base method.
func (m *MockRepository) ApplyStatsDelta(ctx context.Context, uid string, delta entities.StatsDelta) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyStatsDelta", ctx, uid, delta)
	ret0, _ := ret[0].(error)
	return ret0
}

// ApplyStatsDelta indicates an expected call of ApplyStatsDelta.
func (mr *MockRepositoryMockRecorder) ApplyStatsDelta(ctx, uid, delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyStatsDelta", reflect.TypeOf((*MockRepository)(nil).ApplyStatsDelta), ctx, uid, delta)
}

// GetByUID mocks base method.
func (m *MockRepository) GetByUID(ctx context.Context, uid string) (*entities.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUID", ctx, uid)
	ret0, _ := ret[0].(*entities.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUID indicates an expected call of GetByUID.
func (mr *MockRepositoryMockRecorder) GetByUID(ctx, uid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUID", reflect.TypeOf((*MockRepository)(nil).GetByUID), ctx, uid)
}

// RemovePickupID mocks base method.
func (m *MockRepository) RemovePickupID(ctx context.Context, uid, pickupID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemovePickupID", ctx, uid, pickupID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemovePickupID indicates an expected call of RemovePickupID.
func (mr *MockRepositoryMockRecorder) RemovePickupID(ctx, uid, pickupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemovePickupID", reflect.TypeOf((*MockRepository)(nil).RemovePickupID), ctx, uid, pickupID)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
