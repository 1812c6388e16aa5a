package header

import "strings"

// zeissHeader mimics a SmartSEM V06 header block: leading counter lines,
// then pairs of tag line + display line, with both '=' and ':' delimiters.
var zeissHeader = strings.Join([]string{
	"0",
	"",
	"DP_IMAGE_STORE",
	"Store resolution = 1024 * 768",
	"DP_SCANRATE",
	"Scan Speed = 6",
	"DP_DWELL_TIME",
	"Dwell Time = 100 ns",
	"DP_DETECTOR_TYPE",
	"Detector = SE2",
	"AP_WD",
	"WD = 4.9530 mm",
	"AP_MAG",
	"Mag = 250 X",
	"AP_ACTUALKV",
	"EHT = 3.00 kV",
	"AP_IMAGE_PIXEL_SIZE",
	"Image Pixel Size = 111.6 nm",
	"AP_STAGE_AT_X",
	"Stage at X = 50.0710 mm",
	"AP_STAGE_AT_R",
	"Stage at R = 63.0 °",
	"AP_GUN_VACUUM",
	"Gun Vacuum = 2.36e-009 mbar",
	"AP_DATE",
	"Date :25 Nov 2020",
	"AP_TIME",
	"Time :10:06:31",
	"SV_VERSION",
	"Version = V06.03.00",
	"SV_FILE_NAME",
	"File Name = Sample_01.tif",
}, "\r\n")

// tfHeader mimics a Thermo Fisher xT header, including the missing blank
// line between the [HiResIllumination] run and the sections after it.
var tfHeader = strings.Join([]string{
	"[User]",
	"Date=25.11.2020",
	"Time=10:06:31 AM",
	"User=supervisor",
	"UserText=",
	"",
	"[System]",
	"Type=SEM",
	"Software=23.3.1.22195",
	"SystemType=Apreo 2",
	"",
	"[Beam]",
	"HV=15000",
	"Spot=9",
	"StigmatorX=0.00140046",
	"",
	"[EBeam]",
	"HFW=0.000104",
	"VFW=7.8e-05",
	"WD=0.0101389",
	"StageX=0.0489913",
	"ElectronChannelingPatternIsOn=Off",
	"",
	"[Scan]",
	"PixelWidth=6.770833e-08",
	"Dwelltime=1e-06",
	"Average=2",
	"",
	"[Image]",
	"ResolutionX=1536",
	"ResolutionY=1024",
	"",
	"[Vacuum]",
	"ChPressure=0.000112",
	"",
	"[Detectors]",
	"Number=1",
	"Name=T1",
	"Mode=",
	"",
	"[T1]",
	"Contrast=52.63",
	"Brightness=44.33",
	"Signal=A+B",
	"",
	"[HiResIllumination]",
	"BrightFieldIsOn=",
	"BrightFieldValue=",
	"[PrivateFei]",
	"DataBarSelected=HV HFW WD",
	"DatabarHeight=60",
}, "\r\n")

// tfChannelingHeader is an xT header acquired in rocking-beam electron
// channeling mode, where calibration is angular rather than linear.
var tfChannelingHeader = strings.Join([]string{
	"[User]",
	"Date=25.11.2020",
	"",
	"[System]",
	"Software=23.3.1.22195",
	"",
	"[EBeam]",
	"AngularFieldWidth=0.2",
	"AngularPixelWidth=0.0002",
	"ElectronChannelingPatternIsOn=On",
	"",
	"[Image]",
	"ResolutionX=1000",
	"ResolutionY=1000",
}, "\r\n")
