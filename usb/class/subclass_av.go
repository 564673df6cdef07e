package class

// AudioSubClass is the subclass of an Audio (01h) interface.
type AudioSubClass uint8

const (
	AudioControl       AudioSubClass = 0x01
	AudioStreaming     AudioSubClass = 0x02
	AudioMIDIStreaming AudioSubClass = 0x03
)

var audioSubClasses = table{
	base:  BaseAudio,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(AudioControl), "Control"),
		exact(uint8(AudioStreaming), "Streaming"),
		exact(uint8(AudioMIDIStreaming), "MIDI Streaming"),
	},
}

func (AudioSubClass) codes() *table    { return &audioSubClasses }
func (s AudioSubClass) Encode() uint8  { return uint8(s) }
func (s AudioSubClass) String() string { return audioSubClasses.name(uint8(s)) }

// VideoSubClass is the subclass of a Video (0Eh) interface.
type VideoSubClass uint8

const (
	VideoControl             VideoSubClass = 0x01
	VideoStreaming           VideoSubClass = 0x02
	VideoInterfaceCollection VideoSubClass = 0x03
)

var videoSubClasses = table{
	base:  BaseVideo,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(VideoControl), "Control"),
		exact(uint8(VideoStreaming), "Streaming"),
		exact(uint8(VideoInterfaceCollection), "Interface Collection"),
	},
}

func (VideoSubClass) codes() *table    { return &videoSubClasses }
func (s VideoSubClass) Encode() uint8  { return uint8(s) }
func (s VideoSubClass) String() string { return videoSubClasses.name(uint8(s)) }

// AVSubClass is the subclass of an Audio/Video Devices (10h) interface.
type AVSubClass uint8

const (
	AVControl        AVSubClass = 0x01
	AVVideoStreaming AVSubClass = 0x02
	AVAudioStreaming AVSubClass = 0x03
)

var avSubClasses = table{
	base:  BaseAudioVideo,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(AVControl), "Control"),
		exact(uint8(AVVideoStreaming), "Video Streaming"),
		exact(uint8(AVAudioStreaming), "Audio Streaming"),
	},
}

func (AVSubClass) codes() *table    { return &avSubClasses }
func (s AVSubClass) Encode() uint8  { return uint8(s) }
func (s AVSubClass) String() string { return avSubClasses.name(uint8(s)) }
