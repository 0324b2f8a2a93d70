// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_test
//

// Package pickup_test is a generated GoMock package.
package pickup_test

import (
	context "context"
	reflect "reflect"
	entities "service/internal/entities"
	material_catalog "service/internal/pkg/factory/material_catalog"

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

// AppendMaterial mocks base method.
func (m *MockRepository) AppendMaterial(ctx context.Context, id string, entry entities.MaterialEntry) (*entities.Pickup, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AppendMaterial", ctx, id, entry)
	ret0, _ := ret[0].(*entities.Pickup)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AppendMaterial indicates an expected call of AppendMaterial.
func (mr *MockRepositoryMockRecorder) AppendMaterial(ctx, id, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendMaterial", reflect.TypeOf((*MockRepository)(nil).AppendMaterial), ctx, id, entry)
}

// CountActiveByCreator mocks base method.
func (m *MockRepository) CountActiveByCreator(ctx context.Context, uid string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountActiveByCreator", ctx, uid)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountActiveByCreator indicates an expected call of CountActiveByCreator.
func (mr *MockRepositoryMockRecorder) CountActiveByCreator(ctx, uid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountActiveByCreator", reflect.TypeOf((*MockRepository)(nil).CountActiveByCreator), ctx, uid)
}

// CountInProgressByAssignee mocks base method.
func (m *MockRepository) CountInProgressByAssignee(ctx context.Context, uid string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountInProgressByAssignee", ctx, uid)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountInProgressByAssignee indicates an expected call of CountInProgressByAssignee.
func (mr *MockRepositoryMockRecorder) CountInProgressByAssignee(ctx, uid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountInProgressByAssignee", reflect.TypeOf((*MockRepository)(nil).CountInProgressByAssignee), ctx, uid)
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, pickupEntity entities.Pickup) (*entities.Pickup, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, pickupEntity)
	ret0, _ := ret[0].(*entities.Pickup)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, pickupEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, pickupEntity)
}

// Delete mocks base method.
func (m *MockRepository) Delete(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRepository)(nil).Delete), ctx, id)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id string) (*entities.Pickup, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Pickup)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockRepository) List(ctx context.Context, filter entities.PickupFilter) ([]entities.Pickup, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]entities.Pickup)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockRepositoryMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockRepository)(nil).List), ctx, filter)
}

// RemoveMaterial mocks base method.
func (m *MockRepository) RemoveMaterial(ctx context.Context, id string, entry entities.MaterialEntry) (*entities.Pickup, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveMaterial", ctx, id, entry)
	ret0, _ := ret[0].(*entities.Pickup)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RemoveMaterial indicates an expected call of RemoveMaterial.
func (mr *MockRepositoryMockRecorder) RemoveMaterial(ctx, id, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveMaterial", reflect.TypeOf((*MockRepository)(nil).RemoveMaterial), ctx, id, entry)
}

// SetAccepted mocks base method.
func (m *MockRepository) SetAccepted(ctx context.Context, id string, assignee entities.PartyRef) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetAccepted", ctx, id, assignee)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetAccepted indicates an expected call of SetAccepted.
func (mr *MockRepositoryMockRecorder) SetAccepted(ctx, id, assignee any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetAccepted", reflect.TypeOf((*MockRepository)(nil).SetAccepted), ctx, id, assignee)
}

// SetCompleted mocks base method.
func (m *MockRepository) SetCompleted(ctx context.Context, id string, materials []entities.MaterialEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCompleted", ctx, id, materials)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCompleted indicates an expected call of SetCompleted.
func (mr *MockRepositoryMockRecorder) SetCompleted(ctx, id, materials any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCompleted", reflect.TypeOf((*MockRepository)(nil).SetCompleted), ctx, id, materials)
}

// SetInProgress mocks base method.
func (m *MockRepository) SetInProgress(ctx context.Context, id, assigneeID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetInProgress", ctx, id, assigneeID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetInProgress indicates an expected call of SetInProgress.
func (mr *MockRepositoryMockRecorder) SetInProgress(ctx, id, assigneeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInProgress", reflect.TypeOf((*MockRepository)(nil).SetInProgress), ctx, id, assigneeID)
}

// SetPending mocks base method.
func (m *MockRepository) SetPending(ctx context.Context, id, assigneeID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPending", ctx, id, assigneeID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetPending indicates an expected call of SetPending.
func (mr *MockRepositoryMockRecorder) SetPending(ctx, id, assigneeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPending", reflect.TypeOf((*MockRepository)(nil).SetPending), ctx, id, assigneeID)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, pickupModify entities.PickupModify) (*entities.Pickup, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, pickupModify)
	ret0, _ := ret[0].(*entities.Pickup)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, pickupModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, pickupModify)
}

// UpdatePendingWhereAcceptanceExpired mocks base method.
func (m *MockRepository) UpdatePendingWhereAcceptanceExpired(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePendingWhereAcceptanceExpired", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdatePendingWhereAcceptanceExpired indicates an expected call of UpdatePendingWhereAcceptanceExpired.
func (mr *MockRepositoryMockRecorder) UpdatePendingWhereAcceptanceExpired(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePendingWhereAcceptanceExpired", reflect.TypeOf((*MockRepository)(nil).UpdatePendingWhereAcceptanceExpired), ctx)
}

// MockProfileService is a mock of ProfileService interface.
type MockProfileService struct {
	ctrl     *gomock.Controller
	recorder *MockProfileServiceMockRecorder
	isgomock struct{}
}

// MockProfileServiceMockRecorder is the mock recorder for MockProfileService.
type MockProfileServiceMockRecorder struct {
	mock *MockProfileService
}

// NewMockProfileService creates a new mock instance.
func NewMockProfileService(ctrl *gomock.Controller) *MockProfileService {
	mock := &MockProfileService{ctrl: ctrl}
	mock.recorder = &MockProfileServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProfileService) EXPECT() *MockProfileServiceMockRecorder {
	return m.recorder
}

// AppendPickupID mocks base method.
func (m *MockProfileService) AppendPickupID(ctx context.Context, uid, pickupID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AppendPickupID", ctx, uid, pickupID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AppendPickupID indicates an expected call of AppendPickupID.
func (mr *MockProfileServiceMockRecorder) AppendPickupID(ctx, uid, pickupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendPickupID", reflect.TypeOf((*MockProfileService)(nil).AppendPickupID), ctx, uid, pickupID)
}

// ApplyCompletion mocks base method.
func (m *MockProfileService) ApplyCompletion(ctx context.Context, uid string, materials []entities.MaterialEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyCompletion", ctx, uid, materials)
	ret0, _ := ret[0].(error)
	return ret0
}

// ApplyCompletion indicates an expected call of ApplyCompletion.
func (mr *MockProfileServiceMockRecorder) ApplyCompletion(ctx, uid, materials any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyCompletion", reflect.TypeOf((*MockProfileService)(nil).ApplyCompletion), ctx, uid, materials)
}

// GetProfile mocks base method.
func (m *MockProfileService) GetProfile(ctx context.Context, uid string) (*entities.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfile", ctx, uid)
	ret0, _ := ret[0].(*entities.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfile indicates an expected call of GetProfile.
func (mr *MockProfileServiceMockRecorder) GetProfile(ctx, uid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfile", reflect.TypeOf((*MockProfileService)(nil).GetProfile), ctx, uid)
}

// RemovePickupID mocks base method.
func (m *MockProfileService) RemovePickupID(ctx context.Context, uid, pickupID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemovePickupID", ctx, uid, pickupID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemovePickupID indicates an expected call of RemovePickupID.
func (mr *MockProfileServiceMockRecorder) RemovePickupID(ctx, uid, pickupID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemovePickupID", reflect.TypeOf((*MockProfileService)(nil).RemovePickupID), ctx, uid, pickupID)
}

// MockCatalog is a mock of Catalog interface.
type MockCatalog struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogMockRecorder
	isgomock struct{}
}

// MockCatalogMockRecorder is the mock recorder for MockCatalog.
type MockCatalogMockRecorder struct {
	mock *MockCatalog
}

// NewMockCatalog creates a new mock instance.
func NewMockCatalog(ctrl *gomock.Controller) *MockCatalog {
	mock := &MockCatalog{ctrl: ctrl}
	mock.recorder = &MockCatalogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCatalog) EXPECT() *MockCatalogMockRecorder {
	return m.recorder
}

// Lookup mocks base method.
func (m *MockCatalog) Lookup(kind string) (material_catalog.MaterialSpec, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lookup", kind)
	ret0, _ := ret[0].(material_catalog.MaterialSpec)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Lookup indicates an expected call of Lookup.
func (mr *MockCatalogMockRecorder) Lookup(kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockCatalog)(nil).Lookup), kind)
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
