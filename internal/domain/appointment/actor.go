package appointment

import "github.com/edsonbastos2/salon-agenda/internal/models"

// ===============================
// Actor — quem está agindo sobre o agendamento
// ===============================

type ActorKind string

const (
	ActorClient     ActorKind = "client"
	ActorSalonOwner ActorKind = "salon_owner"
	ActorSuperAdmin ActorKind = "super_admin"
)

type Actor struct {
	Kind      ActorKind
	ProfileID uint // preenchido para ActorClient
	SalonID   uint // preenchido para ActorSalonOwner
}

func ClientActor(profileID uint) Actor {
	return Actor{Kind: ActorClient, ProfileID: profileID}
}

func OwnerActor(salonID uint) Actor {
	return Actor{Kind: ActorSalonOwner, SalonID: salonID}
}

func SuperAdminActor() Actor {
	return Actor{Kind: ActorSuperAdmin}
}

// IsClientOf indica se o actor é o cliente dono do agendamento
func (a Actor) IsClientOf(ap *models.Appointment) bool {
	return a.Kind == ActorClient && a.ProfileID == ap.ClientID
}

// OwnsSalonOf indica se o actor administra o salão do agendamento.
// O super admin da plataforma age como dono de qualquer salão.
func (a Actor) OwnsSalonOf(ap *models.Appointment) bool {
	if a.Kind == ActorSuperAdmin {
		return true
	}
	return a.Kind == ActorSalonOwner && a.SalonID == ap.SalonID
}

// CanAccess: qualquer actor que não seja o cliente do agendamento
// nem o dono do salão recebe Forbidden, independente da transição
func (a Actor) CanAccess(ap *models.Appointment) bool {
	return a.IsClientOf(ap) || a.OwnsSalonOf(ap)
}
