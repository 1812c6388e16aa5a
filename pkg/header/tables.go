package header

// Canonical parameter names shared by both vendors. Names are lower-case
// dotted paths; the segment before the dot is only a namespace and does not
// have to match the display group the parameter is curated into.
const (
	ParamFileName        = "general.file_name"
	ParamDate            = "general.date"
	ParamTime            = "general.time"
	ParamUser            = "general.user"
	ParamSystemType      = "general.system_type"
	ParamSoftwareVersion = "general.software_version"

	ParamHighVoltage     = "sem.high_voltage"
	ParamGunVacuum       = "sem.gun_vacuum"
	ParamSystemVacuum    = "sem.system_vacuum"
	ParamChamberPressure = "sem.chamber_pressure"
	ParamFilamentCurrent = "sem.filament_current"
	ParamEmissionCurrent = "sem.emission_current"
	ParamHighCurrent     = "sem.high_current"

	ParamApertureSize     = "beam.aperture_size"
	ParamApertureX        = "beam.aperture_x"
	ParamApertureY        = "beam.aperture_y"
	ParamSpotSize         = "beam.spot_size"
	ParamBeamCurrent      = "beam.current"
	ParamSpecimenCurrent  = "beam.specimen_current"
	ParamStigmatorX       = "beam.stigmator_x"
	ParamStigmatorY       = "beam.stigmator_y"
	ParamBeamShiftX       = "beam.shift_x"
	ParamBeamShiftY       = "beam.shift_y"
	ParamUseCase          = "beam.use_case"
	ParamSourceTiltX      = "beam.source_tilt_x"
	ParamSourceTiltY      = "beam.source_tilt_y"
	ParamCondenserCurrent = "beam.condenser_current"

	ParamDecelerationMode = "deceleration.mode"
	ParamLandingEnergy    = "deceleration.landing_energy"
	ParamImmersionRatio   = "deceleration.immersion_ratio"
	ParamStageBias        = "deceleration.stage_bias"

	ParamMagnification       = "scanning.magnification"
	ParamCycleTime           = "scanning.cycle_time"
	ParamScanSpeed           = "scanning.scan_speed"
	ParamFrameTime           = "scanning.frame_time"
	ParamLineTime            = "scanning.line_time"
	ParamDwellTime           = "scanning.dwell_time"
	ParamMinimumDwellTime    = "scanning.minimum_dwell_time"
	ParamLineAverage         = "scanning.line_average"
	ParamFrameAverage        = "scanning.frame_average"
	ParamFrameIntegrate      = "scanning.frame_integrate"
	ParamScanRotation        = "scanning.scan_rotation"
	ParamTiltCorrection      = "scanning.tilt_correction"
	ParamTiltCorrectionAngle = "scanning.tilt_correction_angle"
	ParamDynamicFocus        = "scanning.dynamic_focus"
	ParamPreTilt             = "scanning.pre_tilt"
	ParamSpecimenTilt        = "scanning.specimen_tilt"

	ParamDetectorName    = "detector.name"
	ParamDetectorNumber  = "detector.number"
	ParamDetectorMode    = "detector.mode"
	ParamContrast        = "detector.contrast"
	ParamBrightness      = "detector.brightness"
	ParamDetectorSignal  = "detector.signal"
	ParamDetectorSetting = "detector.setting"
	ParamBSDGain         = "detector.bsd_gain"

	ParamResolution        = "image.resolution"
	ParamResolutionX       = "image.resolution_x"
	ParamResolutionY       = "image.resolution_y"
	ParamPixelSize         = "image.pixel_size"
	ParamFieldWidth        = "image.field_width"
	ParamFieldHeight       = "image.field_height"
	ParamChannelingPattern = "image.channeling_pattern"
	ParamAngularFieldWidth = "image.angular_field_width"
	ParamAngularPixelWidth = "image.angular_pixel_width"
	ParamDatabarSelected   = "image.databar_selected"
	ParamDatabarHeight     = "image.databar_height"

	ParamStageX          = "stage.x"
	ParamStageY          = "stage.y"
	ParamStageZ          = "stage.z"
	ParamStageRotation   = "stage.rotation"
	ParamStageTilt       = "stage.tilt"
	ParamWorkingDistance = "stage.working_distance"
)

// mapping is one vendor table entry: where a raw key lands in the canonical
// vocabulary, and the SI unit its bare numeric values are calibrated in (xT
// headers carry no unit text).
type mapping struct {
	name string
	unit string
}

// zeissTable maps SmartSEM display names to canonical names. SmartSEM values
// carry their units inline, so no implied units are needed. "Pixel Size" is
// the SmartSEM V05 spelling of V06's "Image Pixel Size".
var zeissTable = map[string]mapping{
	"File Name":        {name: ParamFileName},
	"Date":             {name: ParamDate},
	"Time":             {name: ParamTime},
	"Version":          {name: ParamSoftwareVersion},
	"EHT":              {name: ParamHighVoltage},
	"Gun Vacuum":       {name: ParamGunVacuum},
	"System Vacuum":    {name: ParamSystemVacuum},
	"Fil I":            {name: ParamFilamentCurrent},
	"High Current":     {name: ParamHighCurrent},
	"Aperture Size":    {name: ParamApertureSize},
	"Aperture at X":    {name: ParamApertureX},
	"Aperture at Y":    {name: ParamApertureY},
	"Stigmation X":     {name: ParamStigmatorX},
	"Stigmation Y":     {name: ParamStigmatorY},
	"Beam Shift X":     {name: ParamBeamShiftX},
	"Beam Shift Y":     {name: ParamBeamShiftY},
	"C3 Lens I":        {name: ParamCondenserCurrent},
	"Mag":              {name: ParamMagnification},
	"Cycle Time":       {name: ParamCycleTime},
	"Scan Speed":       {name: ParamScanSpeed},
	"Line Time":        {name: ParamLineTime},
	"Dwell Time":       {name: ParamDwellTime},
	"Line Avg.Count":   {name: ParamLineAverage},
	"Tilt Corrn.":      {name: ParamTiltCorrection},
	"Dyn.Focus":        {name: ParamDynamicFocus},
	"Detector":         {name: ParamDetectorName},
	"Store resolution": {name: ParamResolution},
	"Image Pixel Size": {name: ParamPixelSize},
	"Pixel Size":       {name: ParamPixelSize},
	"Brightness":       {name: ParamBrightness},
	"Contrast":         {name: ParamContrast},
	"BSD Gain":         {name: ParamBSDGain},
	"Stage at X":       {name: ParamStageX},
	"Stage at Y":       {name: ParamStageY},
	"Stage at Z":       {name: ParamStageZ},
	"Stage at R":       {name: ParamStageRotation},
	"WD":               {name: ParamWorkingDistance},
}

// tfTable maps section-qualified xT keys to canonical names. The unit column
// records the SI unit the xT software calibrates each bare magnitude in.
var tfTable = map[string]mapping{
	"User.Date":         {name: ParamDate},
	"User.Time":         {name: ParamTime},
	"User.User":         {name: ParamUser},
	"System.SystemType": {name: ParamSystemType},
	"System.Software":   {name: ParamSoftwareVersion},

	"Beam.HV":           {name: ParamHighVoltage, unit: "V"},
	"Beam.Spot":         {name: ParamSpotSize},
	"Beam.StigmatorX":   {name: ParamStigmatorX},
	"Beam.StigmatorY":   {name: ParamStigmatorY},
	"Beam.BeamShiftX":   {name: ParamBeamShiftX, unit: "m"},
	"Beam.BeamShiftY":   {name: ParamBeamShiftY, unit: "m"},
	"Beam.ScanRotation": {name: ParamScanRotation, unit: "rad"},

	"EBeam.ApertureDiameter":              {name: ParamApertureSize, unit: "m"},
	"EBeam.HFW":                           {name: ParamFieldWidth, unit: "m"},
	"EBeam.VFW":                           {name: ParamFieldHeight, unit: "m"},
	"EBeam.WD":                            {name: ParamWorkingDistance, unit: "m"},
	"EBeam.BeamCurrent":                   {name: ParamBeamCurrent, unit: "A"},
	"EBeam.TiltCorrectionIsOn":            {name: ParamTiltCorrection},
	"EBeam.DynamicFocusIsOn":              {name: ParamDynamicFocus},
	"EBeam.UseCase":                       {name: ParamUseCase},
	"EBeam.SourceTiltX":                   {name: ParamSourceTiltX, unit: "rad"},
	"EBeam.SourceTiltY":                   {name: ParamSourceTiltY, unit: "rad"},
	"EBeam.StageX":                        {name: ParamStageX, unit: "m"},
	"EBeam.StageY":                        {name: ParamStageY, unit: "m"},
	"EBeam.StageZ":                        {name: ParamStageZ, unit: "m"},
	"EBeam.StageR":                        {name: ParamStageRotation, unit: "rad"},
	"EBeam.StageTa":                       {name: ParamStageTilt, unit: "rad"},
	"EBeam.EmissionCurrent":               {name: ParamEmissionCurrent, unit: "A"},
	"EBeam.TiltCorrectionAngle":           {name: ParamTiltCorrectionAngle, unit: "rad"},
	"EBeam.PreTilt":                       {name: ParamPreTilt, unit: "rad"},
	"EBeam.AngularFieldWidth":             {name: ParamAngularFieldWidth, unit: "rad"},
	"EBeam.AngularPixelWidth":             {name: ParamAngularPixelWidth, unit: "rad"},
	"EBeam.ElectronChannelingPatternIsOn": {name: ParamChannelingPattern},

	"EBeamDeceleration.ModeOn":         {name: ParamDecelerationMode},
	"EBeamDeceleration.LandingEnergy":  {name: ParamLandingEnergy, unit: "V"},
	"EBeamDeceleration.ImmersionRatio": {name: ParamImmersionRatio},
	"EBeamDeceleration.StageBias":      {name: ParamStageBias, unit: "V"},

	"Scan.Dwelltime":  {name: ParamDwellTime, unit: "s"},
	"Scan.PixelWidth": {name: ParamPixelSize, unit: "m"},
	"Scan.Average":    {name: ParamFrameAverage},
	"Scan.Integrate":  {name: ParamFrameIntegrate},
	"Scan.FrameTime":  {name: ParamFrameTime, unit: "s"},
	"EScan.LineTime":  {name: ParamLineTime, unit: "s"},

	"Stage.SpecTilt": {name: ParamSpecimenTilt},

	"Image.ResolutionX": {name: ParamResolutionX},
	"Image.ResolutionY": {name: ParamResolutionY},

	"Vacuum.ChPressure": {name: ParamChamberPressure, unit: "Pa"},

	"Specimen.SpecimenCurrent": {name: ParamSpecimenCurrent, unit: "A"},

	"Detectors.Number": {name: ParamDetectorNumber},
	"Detectors.Name":   {name: ParamDetectorName},
	"Detectors.Mode":   {name: ParamDetectorMode},

	"PrivateFei.DataBarSelected": {name: ParamDatabarSelected},
	"PrivateFei.DatabarHeight":   {name: ParamDatabarHeight},
}

// tfDetectorTable maps keys that live in the per-detector section, whose
// section name equals the value of Detectors.Name (e.g. "[T1]"). These cannot
// be keyed statically; normalization resolves the detector name first.
var tfDetectorTable = map[string]mapping{
	"Contrast":         {name: ParamContrast},
	"Brightness":       {name: ParamBrightness},
	"Signal":           {name: ParamDetectorSignal},
	"Setting":          {name: ParamDetectorSetting},
	"MinimumDwellTime": {name: ParamMinimumDwellTime, unit: "s"},
}

// groupOrder is the fixed display order of the curated groups.
var groupOrder = []string{
	"General",
	"SEM",
	"Beam",
	"Beam Deceleration",
	"Scanning",
	"Detector",
	"Image",
	"Stage",
}

// groupMembers lists, per group, the canonical parameters curated into it in
// their fixed display order. Parameters absent from a given header are simply
// omitted from the grouped view.
var groupMembers = map[string][]string{
	"General": {
		ParamFileName, ParamDate, ParamTime, ParamUser,
		ParamSystemType, ParamSoftwareVersion,
	},
	"SEM": {
		ParamHighVoltage, ParamGunVacuum, ParamSystemVacuum,
		ParamChamberPressure, ParamFilamentCurrent,
		ParamEmissionCurrent, ParamHighCurrent,
	},
	"Beam": {
		ParamApertureSize, ParamApertureX, ParamApertureY,
		ParamSpotSize, ParamBeamCurrent, ParamSpecimenCurrent,
		ParamStigmatorX, ParamStigmatorY,
		ParamBeamShiftX, ParamBeamShiftY,
		ParamUseCase, ParamSourceTiltX, ParamSourceTiltY,
		ParamCondenserCurrent,
	},
	"Beam Deceleration": {
		ParamDecelerationMode, ParamLandingEnergy,
		ParamImmersionRatio, ParamStageBias,
	},
	"Scanning": {
		ParamMagnification, ParamCycleTime, ParamScanSpeed,
		ParamFrameTime, ParamLineTime, ParamDwellTime,
		ParamMinimumDwellTime, ParamLineAverage, ParamFrameAverage,
		ParamFrameIntegrate, ParamScanRotation,
		ParamTiltCorrection, ParamTiltCorrectionAngle,
		ParamDynamicFocus, ParamPreTilt, ParamSpecimenTilt,
	},
	"Detector": {
		ParamDetectorName, ParamDetectorNumber, ParamDetectorMode,
		ParamContrast, ParamBrightness,
		ParamDetectorSignal, ParamDetectorSetting, ParamBSDGain,
	},
	"Image": {
		ParamResolution, ParamResolutionX, ParamResolutionY,
		ParamPixelSize, ParamFieldWidth, ParamFieldHeight,
		ParamChannelingPattern,
		ParamAngularFieldWidth, ParamAngularPixelWidth,
		ParamDatabarSelected, ParamDatabarHeight,
	},
	"Stage": {
		ParamStageX, ParamStageY, ParamStageZ,
		ParamStageRotation, ParamStageTilt, ParamWorkingDistance,
	},
}
