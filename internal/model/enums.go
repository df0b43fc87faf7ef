package model

// Wire values stay in Spanish: they are what the existing clients and the
// database rows already carry.

// OperationStatus is shared by service requests and sinisters. It is a plain
// tag, not a strict state machine: any status may be set by an authorized
// update; only the approve operation additionally stamps the approver.
type OperationStatus string

const (
	StatusOpen                OperationStatus = "Abierta"
	StatusCompleted           OperationStatus = "Completado"
	StatusCancelled           OperationStatus = "Cancelado"
	StatusAppointmentAssigned OperationStatus = "Turno Asignado"
	StatusArchived            OperationStatus = "Archivado"
	StatusAudited             OperationStatus = "Auditado"
	StatusRetained            OperationStatus = "Retenida"
	StatusCreated             OperationStatus = "Creado"
	StatusWaiting             OperationStatus = "En Espera"
	StatusClosed              OperationStatus = "Cerrado"
	StatusApproved            OperationStatus = "Aprobado"
)

type RequestType string

const (
	RequestPreventive    RequestType = "Preventivo"
	RequestCorrective    RequestType = "Correctivo"
	RequestVerifications RequestType = "Verificaciones"
	RequestTires         RequestType = "Gomeria"
)

type VerificationType string

const (
	VerificationVTV               VerificationType = "VTV"
	VerificationPolice            VerificationType = "Verificacion Policial"
	VerificationVehicleEngraving  VerificationType = "Grabado de Autopartes"
	VerificationCristalsEngraving VerificationType = "Grabado de Cristales"
)

type TireReason string

const (
	TireReasonWearing    TireReason = "Desgaste"
	TireReasonKilometers TireReason = "Kilometros"
)

type SinisterType string

const (
	SinisterCatastrophe SinisterType = "Catastrofe"
	SinisterColition    SinisterType = "Colisión"
	SinisterFire        SinisterType = "Incendio"
	SinisterRobbery     SinisterType = "Robo"
	SinisterVandalism   SinisterType = "Vandalismo"
	SinisterWindowLock  SinisterType = "Vidrio/Cerradura"
)

type SinisterPlace string

const (
	PlaceHighway      SinisterPlace = "Autopista"
	PlaceAvenue       SinisterPlace = "Avenida"
	PlaceStreet       SinisterPlace = "Calle"
	PlaceIntersection SinisterPlace = "Intersección"
	PlaceOther        SinisterPlace = "Otro"
	PlaceRoute        SinisterPlace = "Ruta"
)

type WorkOrderStatus string

const (
	WorkOrderOpen      WorkOrderStatus = "Abierta"
	WorkOrderCompleted WorkOrderStatus = "Completado"
	WorkOrderCancelled WorkOrderStatus = "Cancelado"
	WorkOrderClosed    WorkOrderStatus = "Cerrado"
)

type BudgetStatus string

const (
	BudgetPending   BudgetStatus = "Pending"
	BudgetApproved  BudgetStatus = "Approved"
	BudgetRejected  BudgetStatus = "Rejected"
	BudgetCancelled BudgetStatus = "Cancelled"
)

// Vehicle classification enums.

type VehicleType string

const (
	VehicleAutoelevator       VehicleType = "Autoelevador"
	VehicleAutomotor          VehicleType = "Automotor"
	VehicleTruck              VehicleType = "Camion"
	VehicleBogie              VehicleType = "Carreton"
	VehicleVan                VehicleType = "Furgon"
	VehicleUtilityVan         VehicleType = "Furgon utilitario"
	VehicleBike               VehicleType = "Moto"
	VehiclePickUp             VehicleType = "Pick up"
	VehicleSUV                VehicleType = "SUV"
	VehicleAllTerrain         VehicleType = "Todo terreno"
	VehicleTractor            VehicleType = "Tractor"
	VehiclePassengerTransport VehicleType = "Transporte de pasajeros"
	VehicleUtility            VehicleType = "Utilitario"
)

type FuelType string

const (
	FuelPetrol   FuelType = "Nafta"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electrico"
	FuelHybrid   FuelType = "Hibrido"
)

type Ownership string

const (
	OwnershipRDA    Ownership = "RDA"
	OwnershipClient Ownership = "Cliente"
	OwnershipBank   Ownership = "Banco"
)

type CoverageType string

const (
	CoverageCivil   CoverageType = "Responsabilidad civil"
	CoverageAllRisk CoverageType = "Todo Riesgo"
	CoverageThirds  CoverageType = "Terceros completo"
	CoverageAuto    CoverageType = "Autoaseguro"
	CoverageO       CoverageType = "Cobertura O"
)

type PurchaseType string

const (
	PurchaseFactory        PurchaseType = "Fabrica"
	PurchaseImporter       PurchaseType = "Importador"
	PurchaseConcessionaire PurchaseType = "Concesionario"
)

// Membership checks for enums accepted on write paths. Several wire values
// contain spaces, so checking happens here instead of in struct tags.

func (s OperationStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusCompleted, StatusCancelled, StatusAppointmentAssigned,
		StatusArchived, StatusAudited, StatusRetained, StatusCreated,
		StatusWaiting, StatusClosed, StatusApproved:
		return true
	}
	return false
}

func (t RequestType) Valid() bool {
	switch t {
	case RequestPreventive, RequestCorrective, RequestVerifications, RequestTires:
		return true
	}
	return false
}

func (t VerificationType) Valid() bool {
	switch t {
	case VerificationVTV, VerificationPolice, VerificationVehicleEngraving, VerificationCristalsEngraving:
		return true
	}
	return false
}

func (r TireReason) Valid() bool {
	return r == TireReasonWearing || r == TireReasonKilometers
}

func (t SinisterType) Valid() bool {
	switch t {
	case SinisterCatastrophe, SinisterColition, SinisterFire,
		SinisterRobbery, SinisterVandalism, SinisterWindowLock:
		return true
	}
	return false
}

func (p SinisterPlace) Valid() bool {
	switch p {
	case PlaceHighway, PlaceAvenue, PlaceStreet, PlaceIntersection, PlaceOther, PlaceRoute:
		return true
	}
	return false
}

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderOpen, WorkOrderCompleted, WorkOrderCancelled, WorkOrderClosed:
		return true
	}
	return false
}

func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetPending, BudgetApproved, BudgetRejected, BudgetCancelled:
		return true
	}
	return false
}
