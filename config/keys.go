package config

// Tuning keys. Durations are milliseconds, speeds are units per second and
// negative vertical values point up.
const (
	KeyMoveSpeed        = "move.speed"
	KeyMoveAirControl   = "move.airControl"
	KeyMoveCrouchFactor = "move.crouchFactor"
	KeyGroundFriction   = "move.groundFriction"
	KeyAirResistance    = "move.airResistance"

	KeyJumpVelocity       = "jump.velocity"
	KeyJumpBuffer         = "jump.bufferMs"
	KeyJumpCoyote         = "jump.coyoteMs"
	KeyJumpReleaseDamping = "jump.releaseDamping"
	KeyDoubleJumpFactor   = "jump.doubleFactor"
	KeyBoostJumpVelocity  = "jump.boostVelocity"
	KeyChargeJumpVelocity = "jump.chargeVelocity"

	KeyBoostSpeed       = "boost.speed"
	KeyBoostDuration    = "boost.durationMs"
	KeyBoostAirMomentum = "boost.airMomentumMs"

	KeyChargeSpeed    = "charge.speed"
	KeyChargeDuration = "charge.durationMs"

	KeySlideSpeed       = "slide.speed"
	KeySlideDuration    = "slide.durationMs"
	KeySlideHeightScale = "slide.heightScale"

	KeyDashSpeed           = "dash.speed"
	KeyDashDuration        = "dash.durationMs"
	KeyDashCooldown        = "dash.cooldownMs"
	KeyDashBoostDuration   = "dash.boostDurationMs"
	KeyAirDashSpeed        = "dash.airSpeed"
	KeyAirDashDuration     = "dash.airDurationMs"
	KeyAirDashVerticalKeep = "dash.airVerticalFactor"
	KeyDashDoubleTapWindow = "dash.doubleTapWindowMs"

	KeyWallFallThreshold      = "wall.fallThreshold"
	KeyWallSlideSpeed         = "wall.slideSpeed"
	KeyWallContactReach       = "wall.contactReach"
	KeyWallKickRisingVelocity = "wall.kick.risingVelocity"
	KeyWallKickPeakJump       = "wall.kick.peakJumpFactor"
	KeyWallKickPeakPush       = "wall.kick.peakPush"
	KeyWallKickSlideJump      = "wall.kick.slideJumpFactor"
	KeyWallKickSlidePush      = "wall.kick.slidePush"
	KeyWallKickMomentum       = "wall.kick.momentumMs"
	KeyWallRunJumpFactor      = "wall.run.jumpFactor"
	KeyWallRunPushFactor      = "wall.run.pushFactor"
	KeyWallRunMax             = "wall.run.max"
	KeyWallMomentumMinSpeed   = "wall.momentum.minSpeed"
	KeyWallMomentumConversion = "wall.momentum.conversion"
	KeyWallMomentumRetain     = "wall.momentum.retain"

	KeyEnergyMax            = "energy.max"
	KeyEnergyBase           = "energy.base"
	KeyEnergyChainExtension = "energy.chainExtension"
	KeyEnergyCooldownRate   = "energy.cooldownRate"
	KeyEnergyCooldown       = "energy.cooldownMs"
	KeyEnergyChainJump      = "energy.chain.jumpMs"
	KeyEnergyChainDash      = "energy.chain.dashMs"
	KeyEnergyChainWall      = "energy.chain.wallMs"
)

// Feature flags.
const (
	FlagCanBoost         = "canBoost"
	FlagCanCharge        = "canCharge"
	FlagCanSlide         = "canSlide"
	FlagCanCrouch        = "canCrouch"
	FlagCanBoostJump     = "canBoostJump"
	FlagCanChargeJump    = "canChargeJump"
	FlagCanDoubleJump    = "canDoubleJump"
	FlagCanDash          = "canDash"
	FlagCanAirDash       = "canAirDash"
	FlagCanWallKick      = "canWallKick"
	FlagCanWallRun       = "canWallRun"
	FlagSprintHold       = "sprintHold"
	FlagBoostBufferInAir = "boostBufferInAir"
	FlagBoostJumpSteer   = "boostJumpSteer"
)

// fallbacks are the documented defaults used when neither the active profile
// nor the base values of a table define a key.
var fallbacks = map[string]float64{
	KeyMoveSpeed:        140,
	KeyMoveAirControl:   1,
	KeyMoveCrouchFactor: 0.5,
	KeyGroundFriction:   0.6,
	KeyAirResistance:    0.95,

	KeyJumpVelocity:       -450,
	KeyJumpBuffer:         75,
	KeyJumpCoyote:         100,
	KeyJumpReleaseDamping: 0.5,
	KeyDoubleJumpFactor:   1.1,
	KeyBoostJumpVelocity:  -550,
	KeyChargeJumpVelocity: -800,

	KeyBoostSpeed:       400,
	KeyBoostDuration:    350,
	KeyBoostAirMomentum: 300,

	KeyChargeSpeed:    128,
	KeyChargeDuration: 600,

	KeySlideSpeed:       250,
	KeySlideDuration:    800,
	KeySlideHeightScale: 0.5,

	KeyDashSpeed:           500,
	KeyDashDuration:        200,
	KeyDashCooldown:        800,
	KeyDashBoostDuration:   300,
	KeyAirDashVerticalKeep: 0.5,
	KeyDashDoubleTapWindow: 300,

	KeyWallFallThreshold:      50,
	KeyWallSlideSpeed:         25,
	KeyWallContactReach:       1,
	KeyWallKickRisingVelocity: -20,
	KeyWallKickPeakJump:       0.8,
	KeyWallKickPeakPush:       450,
	KeyWallKickSlideJump:      0.3,
	KeyWallKickSlidePush:      800,
	KeyWallKickMomentum:       150,
	KeyWallRunJumpFactor:      1.4,
	KeyWallRunPushFactor:      0.8,
	KeyWallRunMax:             2,
	KeyWallMomentumMinSpeed:   200,
	KeyWallMomentumConversion: 0.3,
	KeyWallMomentumRetain:     0.4,

	KeyEnergyMax:            1000,
	KeyEnergyBase:           300,
	KeyEnergyChainExtension: 200,
	KeyEnergyCooldownRate:   500,
	KeyEnergyCooldown:       500,
	KeyEnergyChainJump:      200,
	KeyEnergyChainDash:      150,
	KeyEnergyChainWall:      300,
}

// derived fallbacks resolve to another key when their own value is missing.
var derived = map[string]string{
	KeyAirDashSpeed:    KeyDashSpeed,
	KeyAirDashDuration: KeyDashDuration,
}

// Fallback returns the documented default for key.
func Fallback(key string) (float64, bool) {
	v, ok := fallbacks[key]
	return v, ok
}
